package dial

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestPolarCoordSysCenter(t *testing.T) {
	tests := []struct {
		w, h   float64
		want   gg.Point
		wantOK bool
	}{
		{400, 300, gg.Pt(200, 150), true},
		{1, 1, gg.Pt(0.5, 0.5), true},
		{0, 300, gg.Point{}, false},
		{300, 0, gg.Point{}, false},
		{math.NaN(), 10, gg.Point{}, false},
		{math.Inf(1), 10, gg.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := PolarCoordSys{Width: tt.w, Height: tt.h, Max: 100}.Center()
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Center() for %vx%v = %v, %v; want %v, %v", tt.w, tt.h, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPolarCoordSysValueToAngle(t *testing.T) {
	cs := PolarCoordSys{Width: 100, Height: 100, Max: 100}
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{25, -math.Pi / 2},
		{50, -math.Pi},
		{100, -2 * math.Pi},
	}
	for _, tt := range tests {
		if got := cs.ValueToAngle(tt.v); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ValueToAngle(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	ccw := cs
	ccw.CounterClockwise = true
	if got := ccw.ValueToAngle(25); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("counter-clockwise ValueToAngle(25) = %v, want %v", got, math.Pi/2)
	}

	if got := (PolarCoordSys{StartAngle: 1}).ValueToAngle(42); got != 1 {
		t.Errorf("empty axis ValueToAngle = %v, want start angle", got)
	}
}

package dial

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func approx(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestToCartesian(t *testing.T) {
	tests := []struct {
		name   string
		center gg.Point
		radius float64
		angle  float64
		want   gg.Point
	}{
		{"zero angle", gg.Pt(0, 0), 10, 0, gg.Pt(10, 0)},
		{"quarter turn is up", gg.Pt(0, 0), 10, math.Pi / 2, gg.Pt(0, -10)},
		{"half turn", gg.Pt(0, 0), 10, math.Pi, gg.Pt(-10, 0)},
		{"negative quarter is down", gg.Pt(0, 0), 10, -math.Pi / 2, gg.Pt(0, 10)},
		{"offset center", gg.Pt(200, 150), 50, 0, gg.Pt(250, 150)},
		{"zero radius", gg.Pt(3, 4), 0, 1.234, gg.Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCartesian(tt.center, tt.radius, tt.angle)
			if !approx(got, tt.want) {
				t.Errorf("ToCartesian(%v, %v, %v) = %v, want %v", tt.center, tt.radius, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPointerOutline(t *testing.T) {
	center := gg.Pt(120, 80)
	const outer, inner = 150.0, 40.0
	for _, angle := range []float64{0, 0.5, math.Pi / 2, -math.Pi, -5.9, 2 * math.Pi, 37} {
		pts := PointerOutline(center, outer, inner, angle)
		if len(pts) != 3 {
			t.Fatalf("PointerOutline() returned %d points, want 3", len(pts))
		}
		if d := pts[2].Distance(center); math.Abs(d-inner) > eps {
			t.Errorf("angle %v: tail distance = %v, want %v", angle, d, inner)
		}
		for i := range 2 {
			if d := pts[i].Distance(center); math.Abs(d-outer) > eps {
				t.Errorf("angle %v: tip %d distance = %v, want %v", angle, i, d, outer)
			}
		}
		if want := ToCartesian(center, outer, angle+PointerTipWidth); !approx(pts[1], want) {
			t.Errorf("angle %v: second tip = %v, want %v", angle, pts[1], want)
		}
	}
}

func TestPointerOutlineZeroRadius(t *testing.T) {
	pts := PointerOutline(gg.Pt(10, 10), 0, 0, 1)
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || !approx(p, gg.Pt(10, 10)) {
			t.Errorf("point %d = %v, want center", i, p)
		}
	}
}

func TestSectorOutline(t *testing.T) {
	center := gg.Pt(0, 0)
	s := Sector{Center: center, InnerRadius: 5, Radius: 10, StartAngle: 0, EndAngle: math.Pi / 2}
	pts := SectorOutline(s, 8)

	n := int(math.Ceil(math.Pi / 2 * 8))
	if len(pts) != 2*(n+1) {
		t.Fatalf("len = %d, want %d", len(pts), 2*(n+1))
	}
	if !approx(pts[0], gg.Pt(10, 0)) {
		t.Errorf("first outer point = %v, want (10, 0)", pts[0])
	}
	// Positive screen angles turn clockwise: a quarter ends straight down.
	if !approx(pts[n], gg.Pt(0, 10)) {
		t.Errorf("last outer point = %v, want (0, 10)", pts[n])
	}
	if !approx(pts[n+1], gg.Pt(0, 5)) {
		t.Errorf("first inner point = %v, want (0, 5)", pts[n+1])
	}
	if !approx(pts[len(pts)-1], gg.Pt(5, 0)) {
		t.Errorf("last inner point = %v, want (5, 0)", pts[len(pts)-1])
	}
}

func TestSectorOutlineDegenerate(t *testing.T) {
	tests := []struct {
		name string
		s    Sector
	}{
		{"zero radii", Sector{Center: gg.Pt(50, 50), EndAngle: math.Pi}},
		{"zero sweep", Sector{Center: gg.Pt(50, 50), InnerRadius: 10, Radius: 20}},
		{"over full turn", Sector{Center: gg.Pt(50, 50), InnerRadius: 10, Radius: 20, EndAngle: 9 * math.Pi}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := SectorOutline(tt.s, 16)
			if len(pts) < 4 {
				t.Fatalf("len = %d, want at least 4", len(pts))
			}
			for i, p := range pts {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("point %d is NaN", i)
				}
			}
		})
	}
}

package dial

import (
	"math"

	"github.com/gogpu/gg"
)

// CoordSys is the coordinate system a host supplies when it asks for a
// scene: where the dial is centered and how a value maps to an angle.
type CoordSys interface {
	// Center returns the dial center in canvas coordinates. ok is false
	// when the viewport has no area.
	Center() (center gg.Point, ok bool)

	// ValueToAngle maps a data value to radians, counter-clockwise from
	// the positive x-axis.
	ValueToAngle(v float64) float64
}

// PolarCoordSys is a polar coordinate system centered in a viewport with
// a value axis spanning one full turn from Min to Max.
type PolarCoordSys struct {
	Width, Height float64
	Min, Max      float64
	// StartAngle is the angle of Min in radians.
	StartAngle float64
	// CounterClockwise reverses the direction in which values grow.
	CounterClockwise bool
}

// NewPolarCoordSys returns the coordinate system used for a dial of the
// given size: axis from 0 to cfg.ValueDenominator, starting at 3 o'clock
// and growing clockwise.
func NewPolarCoordSys(width, height float64, cfg Config) PolarCoordSys {
	return PolarCoordSys{Width: width, Height: height, Min: 0, Max: cfg.ValueDenominator}
}

// Size returns the viewport size.
func (p PolarCoordSys) Size() (width, height float64) {
	return p.Width, p.Height
}

// Center implements CoordSys.
func (p PolarCoordSys) Center() (gg.Point, bool) {
	if !(p.Width > 0) || !(p.Height > 0) || math.IsInf(p.Width, 0) || math.IsInf(p.Height, 0) {
		return gg.Point{}, false
	}
	return gg.Pt(p.Width/2, p.Height/2), true
}

// ValueToAngle implements CoordSys.
func (p PolarCoordSys) ValueToAngle(v float64) float64 {
	span := p.Max - p.Min
	if span == 0 || math.IsNaN(span) {
		return p.StartAngle
	}
	turn := (v - p.Min) / span * 2 * math.Pi
	if p.CounterClockwise {
		return p.StartAngle + turn
	}
	return p.StartAngle - turn
}

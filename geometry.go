package dial

import (
	"math"

	"github.com/gogpu/gg"
)

// PointerTipWidth is the angular width of the pointer tip.
const PointerTipWidth = 0.03 * math.Pi

// ToCartesian converts a polar position around center to canvas
// coordinates. Angles are in radians, counter-clockwise from the positive
// x-axis; the canvas y-axis points down, hence the negated sine.
func ToCartesian(center gg.Point, radius, angle float64) gg.Point {
	return gg.Pt(
		center.X+radius*math.Cos(angle),
		center.Y-radius*math.Sin(angle),
	)
}

// PointerOutline returns the triangular clip of the pointer at angle: two
// vertices on the outer radius one tip width apart and one vertex on the
// pointer's inner radius.
func PointerOutline(center gg.Point, outerRadius, pointerInnerRadius, angle float64) [3]gg.Point {
	return [3]gg.Point{
		ToCartesian(center, outerRadius, angle),
		ToCartesian(center, outerRadius, angle+PointerTipWidth),
		ToCartesian(center, pointerInnerRadius, angle),
	}
}

// SectorOutline flattens an annular sector into a closed polygon: the
// outer arc from StartAngle to EndAngle followed by the inner arc back.
// Sector angles are screen angles (clockwise, y down). A sector with zero
// radii or zero sweep collapses to a degenerate outline.
func SectorOutline(s Sector, segmentsPerRadian float64) []gg.Point {
	sweep := s.EndAngle - s.StartAngle
	if math.Abs(sweep) > 2*math.Pi {
		sweep = math.Copysign(2*math.Pi, sweep)
	}
	n := max(1, int(math.Ceil(math.Abs(sweep)*segmentsPerRadian)))
	step := sweep / float64(n)

	pts := make([]gg.Point, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		pts = append(pts, ToCartesian(s.Center, s.Radius, -(s.StartAngle+float64(i)*step)))
	}
	for i := n; i >= 0; i-- {
		pts = append(pts, ToCartesian(s.Center, s.InnerRadius, -(s.StartAngle+float64(i)*step)))
	}
	return pts
}

package dial

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// AnomalyThreshold is the lowest value an in-flight animation is expected
// to produce for non-negative data. Lower values indicate an interpolation
// fault.
const AnomalyThreshold = -10

// FormatLabel renders the center label: prefix, the value as a whole
// percentage of cfg.ValueDenominator, suffix.
func FormatLabel(value float64, cfg Config) string {
	pct := math.Round(value / cfg.ValueDenominator * 100)
	if pct == 0 {
		pct = 0 // drop the sign of -0
	}
	return cfg.Prefix + strconv.FormatFloat(pct, 'f', 0, 64) + cfg.Suffix
}

// AnimationFrameContext is everything the per-frame update needs. It is
// stored by value in the scene so the update has no hidden state.
type AnimationFrameContext struct {
	Center gg.Point
	Config Config
	// Floor is the lowest plausible in-flight value. Values below it are
	// reported and shown as 0.
	Floor float64
}

// NewAnimationFrameContext returns the frame context for a dial showing
// value.
func NewAnimationFrameContext(center gg.Point, cfg Config, value float64) AnimationFrameContext {
	return AnimationFrameContext{Center: center, Config: cfg, Floor: min(AnomalyThreshold, value)}
}

// Pointer returns the pointer polygon at the interpolated angle.
func (fc AnimationFrameContext) Pointer(angle float64) []gg.Point {
	pts := PointerOutline(fc.Center, fc.Config.OuterRadius, fc.Config.PointerInnerRadius, angle)
	return pts[:]
}

// Label formats an in-flight value. Values below Floor are logged and
// clamped to 0 instead of interrupting the frame.
func (fc AnimationFrameContext) Label(value float64) string {
	if value < fc.Floor || math.IsNaN(value) {
		Logger().Warn("dial: animation value out of range",
			"value", value, "floor", fc.Floor)
		value = 0
	}
	return FormatLabel(value, fc.Config)
}

package dial

import (
	"errors"
	"math"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Documented bounds of the numeric configuration fields.
const (
	MaxAnimationDurationMs = 2000
	MaxArcRadius           = 240
	MaxPanelRadius         = 300
)

// Config is the fully resolved configuration of one render pass.
// Field keys match the form data emitted by the control panel.
type Config struct {
	PrimaryColor PrimaryColor `mapstructure:"primaryColor" json:"primaryColor"`
	Prefix       string       `mapstructure:"prefix" json:"prefix"`
	Suffix       string       `mapstructure:"suffix" json:"suffix"`
	CircleColor  string       `mapstructure:"circleColor" json:"circleColor"`
	TextColor    string       `mapstructure:"textColor" json:"textColor"`

	AnimationDurationMs       int    `mapstructure:"animationDurationMs" json:"animationDurationMs"`
	AnimationUpdateDurationMs int    `mapstructure:"animationUpdateDurationMs" json:"animationUpdateDurationMs"`
	AnimationEasing           string `mapstructure:"animationEasing" json:"animationEasing"`
	AnimationEasingUpdate     string `mapstructure:"animationEasingUpdate" json:"animationEasingUpdate"`

	// ValueDenominator maps the raw value to a percentage:
	// value / ValueDenominator * 100.
	ValueDenominator float64 `mapstructure:"valueDenominator" json:"valueDenominator"`

	OuterRadius        float64 `mapstructure:"outerRadius" json:"outerRadius"`
	InnerRadius        float64 `mapstructure:"innerRadius" json:"innerRadius"`
	PointerInnerRadius float64 `mapstructure:"pointerInnerRadius" json:"pointerInnerRadius"`
	InsidePanelRadius  float64 `mapstructure:"insidePanelRadius" json:"insidePanelRadius"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		PrimaryColor:              Red,
		Prefix:                    " ",
		Suffix:                    "%",
		CircleColor:               "white",
		TextColor:                 "black",
		AnimationDurationMs:       1000,
		AnimationUpdateDurationMs: 1000,
		AnimationEasing:           "cubicOut",
		AnimationEasingUpdate:     "quarticInOut",
		ValueDenominator:          100,
		OuterRadius:               150,
		InnerRadius:               140,
		PointerInnerRadius:        40,
		InsidePanelRadius:         110,
	}
}

// EasingNames lists the easing names the animation engine accepts for
// AnimationEasing and AnimationEasingUpdate, sorted.
var EasingNames = []string{
	"cubicIn", "cubicInOut", "cubicOut",
	"linear",
	"quadraticIn", "quadraticInOut", "quadraticOut",
	"quarticIn", "quarticInOut", "quarticOut",
	"sinusoidalInOut",
}

// legacyKeys maps form data keys written by older dashboards to their
// current names.
var legacyKeys = map[string]string{
	"primaryColour":           "primaryColor",
	"circleColour":            "circleColor",
	"textColour":              "textColor",
	"animationDuration":       "animationDurationMs",
	"animationDurationUpdate": "animationUpdateDurationMs",
	"valOnRadianMax":          "valueDenominator",
}

// Resolve merges formData over DefaultConfig. Keys that are absent keep
// their default; keys the dial does not know (metrics, filters, row
// limits) are ignored. The result is clamped with Config.Clamp.
func Resolve(formData map[string]any) (Config, error) {
	cfg := DefaultConfig()

	overrides := make(map[string]any, len(formData))
	for k, v := range formData {
		if canonical, ok := legacyKeys[k]; ok {
			if _, set := formData[canonical]; set {
				continue
			}
			k = canonical
		}
		overrides[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       primaryColorHook,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(overrides); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			return Config{}, cfgErr
		}
		return Config{}, &ConfigError{Field: "formData", Value: formData, Reason: "cannot decode overrides", Err: err}
	}
	if !cfg.PrimaryColor.Valid() {
		return Config{}, &ConfigError{Field: "primaryColor", Value: cfg.PrimaryColor, Reason: "unknown primary color"}
	}

	return cfg.Clamp(), nil
}

var primaryColorType = reflect.TypeOf(PrimaryColor(""))

// primaryColorHook parses primary colors and rejects non-string input,
// which weak decoding would otherwise turn into an unknown color name.
func primaryColorHook(_, to reflect.Type, data any) (any, error) {
	if to != primaryColorType {
		return data, nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.String {
		return nil, &ConfigError{Field: "primaryColor", Value: data, Reason: "primary color must be a string"}
	}
	return ParsePrimaryColor(v.String())
}

// Clamp returns a copy of c with every numeric field forced into its
// documented range. It never fails: out-of-range values are corrected and
// reported at warn level.
func (c Config) Clamp() Config {
	log := Logger()
	def := DefaultConfig()

	clampField := func(name string, v *float64, hi float64) {
		clamped := clampFloat(*v, 0, hi)
		if clamped != *v {
			log.Warn("dial: clamped configuration value", "field", name, "value", *v, "clamped", clamped)
			*v = clamped
		}
	}
	clampField("outerRadius", &c.OuterRadius, MaxArcRadius)
	clampField("innerRadius", &c.InnerRadius, MaxArcRadius)
	clampField("pointerInnerRadius", &c.PointerInnerRadius, MaxPanelRadius)
	clampField("insidePanelRadius", &c.InsidePanelRadius, MaxPanelRadius)

	if c.InnerRadius > c.OuterRadius {
		log.Warn("dial: innerRadius exceeds outerRadius", "innerRadius", c.InnerRadius, "outerRadius", c.OuterRadius)
		c.InnerRadius = c.OuterRadius
	}

	clampMs := func(name string, v *int) {
		clamped := min(max(*v, 0), MaxAnimationDurationMs)
		if clamped != *v {
			log.Warn("dial: clamped configuration value", "field", name, "value", *v, "clamped", clamped)
			*v = clamped
		}
	}
	clampMs("animationDurationMs", &c.AnimationDurationMs)
	clampMs("animationUpdateDurationMs", &c.AnimationUpdateDurationMs)

	if !(c.ValueDenominator > 0) || math.IsInf(c.ValueDenominator, 0) {
		log.Warn("dial: valueDenominator must be positive, using default",
			"value", c.ValueDenominator, "default", def.ValueDenominator)
		c.ValueDenominator = def.ValueDenominator
	}
	if c.AnimationEasing == "" {
		c.AnimationEasing = def.AnimationEasing
	}
	if c.AnimationEasingUpdate == "" {
		c.AnimationEasingUpdate = def.AnimationEasingUpdate
	}
	return c
}

// AnimationDuration is the duration of the entry transition.
func (c Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}

// AnimationUpdateDuration is the duration of value-change transitions.
func (c Config) AnimationUpdateDuration() time.Duration {
	return time.Duration(c.AnimationUpdateDurationMs) * time.Millisecond
}

// clampFloat clamps v into [lo, hi]; NaN becomes lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

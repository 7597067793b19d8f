package anim

import (
	"math"
	"sort"
)

// Easing maps linear progress t in [0, 1] to eased progress. Every easing
// satisfies e(0) = 0 and e(1) = 1.
type Easing func(t float64) float64

// Easing names understood by Lookup.
const (
	Linear          = "linear"
	QuadraticIn     = "quadraticIn"
	QuadraticOut    = "quadraticOut"
	QuadraticInOut  = "quadraticInOut"
	CubicIn         = "cubicIn"
	CubicOut        = "cubicOut"
	CubicInOut      = "cubicInOut"
	QuarticIn       = "quarticIn"
	QuarticOut      = "quarticOut"
	QuarticInOut    = "quarticInOut"
	SinusoidalInOut = "sinusoidalInOut"
)

var easings = map[string]Easing{
	Linear: func(t float64) float64 {
		return t
	},
	QuadraticIn: func(t float64) float64 {
		return t * t
	},
	QuadraticOut: func(t float64) float64 {
		return t * (2 - t)
	},
	QuadraticInOut: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	},
	CubicIn: func(t float64) float64 {
		return t * t * t
	},
	CubicOut: func(t float64) float64 {
		u := t - 1
		return u*u*u + 1
	},
	CubicInOut: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 0.5*u*u*u + 1
	},
	QuarticIn: func(t float64) float64 {
		return t * t * t * t
	},
	QuarticOut: func(t float64) float64 {
		u := t - 1
		return 1 - u*u*u*u
	},
	QuarticInOut: func(t float64) float64 {
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := t - 1
		return 1 - 8*u*u*u*u
	},
	SinusoidalInOut: func(t float64) float64 {
		return 0.5 * (1 - math.Cos(math.Pi*t))
	},
}

// Lookup returns the easing registered under name.
func Lookup(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// Names returns the registered easing names, sorted.
func Names() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package anim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/dial"
)

// DefaultEasing is used when a scene names an unknown easing.
const DefaultEasing = CubicOut

// Animator drives the transitions of successive scenes of one dial.
// Starting a transition supersedes the one in flight: the superseded
// transition stops producing frames and the new one continues from the
// values last shown.
type Animator struct {
	gen atomic.Uint64

	mu      sync.Mutex
	current *Transition
}

// Transition animates one scene from its start values to its targets.
type Transition struct {
	animator *Animator
	gen      uint64
	scene    *dial.Scene
	from     map[string]float64
	to       map[string]float64
	duration time.Duration
	ease     Easing

	mu   sync.Mutex
	last map[string]float64
}

// Start begins the transition to scene. The first scene enters from its
// declared enter values with the entry duration; later scenes start from
// the values of the transition they replace with the update duration.
func (a *Animator) Start(scene *dial.Scene) *Transition {
	a.mu.Lock()
	defer a.mu.Unlock()

	to := scene.Targets()
	from := scene.EnterValues()
	duration := scene.Animation.Duration
	easing := scene.Animation.Easing

	if prev := a.current; prev != nil {
		shown := prev.shown()
		for k := range from {
			if v, ok := shown[k]; ok {
				from[k] = v
			}
		}
		duration = scene.Animation.UpdateDuration
		easing = scene.Animation.EasingUpdate
	}

	t := &Transition{
		animator: a,
		gen:      a.gen.Add(1),
		scene:    scene,
		from:     from,
		to:       to,
		duration: duration,
		ease:     easingOrDefault(easing),
		last:     from,
	}
	a.current = t
	dial.Logger().Debug("anim: transition started",
		"generation", t.gen, "duration", duration, "easing", easing)
	return t
}

// Reset forgets the current transition; the next scene enters afresh.
// Frames of the forgotten transition are refused.
func (a *Animator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen.Add(1)
	a.current = nil
}

// Duration returns the length of the transition.
func (t *Transition) Duration() time.Duration { return t.duration }

// Active reports whether t is still the current transition of its
// animator.
func (t *Transition) Active() bool {
	return t.animator.gen.Load() == t.gen
}

// Frame returns the scene at elapsed time since the start of the
// transition. ok is false once the transition has been superseded; the
// caller must then drop the frame. done is true at or after the end.
func (t *Transition) Frame(elapsed time.Duration) (scene *dial.Scene, done, ok bool) {
	if !t.Active() {
		return nil, false, false
	}

	p := 1.0
	if t.duration > 0 {
		p = min(max(float64(elapsed)/float64(t.duration), 0), 1)
	}
	e := t.ease(p)

	values := make(map[string]float64, len(t.to))
	for k, to := range t.to {
		from, ok := t.from[k]
		if !ok {
			from = to
		}
		values[k] = from*(1-e) + to*e
	}

	t.mu.Lock()
	t.last = values
	t.mu.Unlock()

	return t.scene.Frame(values), p >= 1, true
}

// Final returns the resting scene, or ok=false if t was superseded.
func (t *Transition) Final() (*dial.Scene, bool) {
	s, _, ok := t.Frame(t.duration)
	return s, ok
}

func (t *Transition) shown() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

func easingOrDefault(name string) Easing {
	if e, ok := Lookup(name); ok {
		return e
	}
	if name != "" {
		dial.Logger().Warn("anim: unknown easing, using default", "easing", name, "default", DefaultEasing)
	}
	e, _ := Lookup(DefaultEasing)
	return e
}

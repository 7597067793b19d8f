package dial

import (
	"time"

	"github.com/gogpu/gg"
)

// NodeKind identifies the concrete type of a scene node.
type NodeKind uint8

const (
	KindGroup NodeKind = iota
	KindClippedImage
	KindCircle
	KindText
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindClippedImage:
		return "image"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is an element of a dial scene. Nodes are plain values: a scene
// never holds functions, so two scenes compare with reflect.DeepEqual.
type Node interface {
	Kind() NodeKind
}

// Animated properties. A Transition names one of these; a frame state
// carries the interpolated value for each.
const (
	PropEndAngle     = "endAngle"
	PropPointerAngle = "pointerAngle"
	PropValue        = "value"
	PropOpacity      = "opacity"
)

// Transition declares that a property animates toward its value in the
// scene, starting from EnterFrom when the scene is first drawn.
type Transition struct {
	Property  string
	EnterFrom float64
}

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Group holds child nodes painted in order.
type Group struct {
	Children []Node
}

// ClipShape is the region an image is clipped to: Sector or Polygon.
type ClipShape interface {
	clipShape()
}

// Sector is an annular sector. Angles are screen angles in radians:
// 0 points right and positive angles turn clockwise.
type Sector struct {
	Center      gg.Point
	InnerRadius float64
	Radius      float64
	StartAngle  float64
	EndAngle    float64
	Transition  Transition
}

func (Sector) clipShape() {}

// Polygon is a closed polygon whose points are re-derived from Angle on
// every animation frame through Frame.
type Polygon struct {
	Points     []gg.Point
	Angle      float64
	Frame      AnimationFrameContext
	Transition Transition
}

func (Polygon) clipShape() {}

// ClippedImage paints Image scaled into Bounds, visible only inside Clip.
type ClippedImage struct {
	Image  AssetRef
	Bounds Rect
	Clip   ClipShape
}

// Shadow is a soft drop shadow.
type Shadow struct {
	Blur    float64
	OffsetX float64
	OffsetY float64
	Color   string
}

// Circle is a filled circle.
type Circle struct {
	Center gg.Point
	Radius float64
	Fill   string
	Shadow Shadow
}

// TextStyle describes how a label is painted.
type TextStyle struct {
	FontSize      float64
	FontWeight    int
	Fill          string
	Align         string
	VerticalAlign string
}

// Text is a label anchored at Position. Content is derived from Value
// through Frame, so the label counts along with the animation.
type Text struct {
	Content     string
	Position    gg.Point
	Value       float64
	Opacity     float64
	Style       TextStyle
	Frame       AnimationFrameContext
	Transitions []Transition
}

func (Group) Kind() NodeKind        { return KindGroup }
func (ClippedImage) Kind() NodeKind { return KindClippedImage }
func (Circle) Kind() NodeKind       { return KindCircle }
func (Text) Kind() NodeKind         { return KindText }

// Animation carries the timing of a scene's transitions.
type Animation struct {
	Duration       time.Duration
	UpdateDuration time.Duration
	Easing         string
	EasingUpdate   string
}

// Scene is the drawable tree for one render pass.
type Scene struct {
	Width, Height float64
	Animation     Animation
	Root          Group
}

// IsEmpty reports whether the scene has nothing to draw.
func (s *Scene) IsEmpty() bool {
	return s == nil || len(s.Root.Children) == 0
}

// Targets returns the resting value of every animated property.
func (s *Scene) Targets() map[string]float64 {
	out := make(map[string]float64, 4)
	s.walkTransitions(func(tr Transition, target float64) {
		out[tr.Property] = target
	})
	return out
}

// EnterValues returns the value every animated property starts from when
// the scene is drawn for the first time.
func (s *Scene) EnterValues() map[string]float64 {
	out := make(map[string]float64, 4)
	s.walkTransitions(func(tr Transition, _ float64) {
		out[tr.Property] = tr.EnterFrom
	})
	return out
}

func (s *Scene) walkTransitions(fn func(tr Transition, target float64)) {
	if s == nil {
		return
	}
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch n := n.(type) {
			case Group:
				walk(n.Children)
			case ClippedImage:
				switch c := n.Clip.(type) {
				case Sector:
					if c.Transition.Property != "" {
						fn(c.Transition, c.EndAngle)
					}
				case Polygon:
					if c.Transition.Property != "" {
						fn(c.Transition, c.Angle)
					}
				}
			case Text:
				for _, tr := range n.Transitions {
					switch tr.Property {
					case PropValue:
						fn(tr, n.Value)
					case PropOpacity:
						fn(tr, n.Opacity)
					}
				}
			}
		}
	}
	walk(s.Root.Children)
}

// Frame returns a copy of s with the animated properties set to the
// interpolated values in state. Properties missing from state keep their
// resting value. The pointer polygon and the label are recomputed from
// the frame context, so the cost is constant per frame.
func (s *Scene) Frame(state map[string]float64) *Scene {
	if s == nil {
		return nil
	}
	out := *s
	out.Root = frameGroup(s.Root, state)
	return &out
}

func frameGroup(g Group, state map[string]float64) Group {
	if g.Children == nil {
		return g
	}
	children := make([]Node, len(g.Children))
	for i, n := range g.Children {
		children[i] = frameNode(n, state)
	}
	return Group{Children: children}
}

func frameNode(n Node, state map[string]float64) Node {
	switch n := n.(type) {
	case Group:
		return frameGroup(n, state)
	case ClippedImage:
		switch c := n.Clip.(type) {
		case Sector:
			if v, ok := state[c.Transition.Property]; ok && c.Transition.Property != "" {
				c.EndAngle = v
			}
			n.Clip = c
		case Polygon:
			if v, ok := state[c.Transition.Property]; ok && c.Transition.Property != "" {
				c.Angle = v
				c.Points = c.Frame.Pointer(v)
			}
			n.Clip = c
		}
		return n
	case Text:
		for _, tr := range n.Transitions {
			v, ok := state[tr.Property]
			if !ok {
				continue
			}
			switch tr.Property {
			case PropValue:
				n.Value = v
				n.Content = n.Frame.Label(v)
			case PropOpacity:
				n.Opacity = clampFloat(v, 0, 1)
			}
		}
		return n
	default:
		return n
	}
}

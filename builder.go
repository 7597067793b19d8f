package dial

// Fixed styling of the dial.
const (
	shadowBlur      = 25
	labelFontSize   = 50
	labelFontWeight = 700
)

// SceneBuilder builds the dial scene for a resolved configuration and an
// extracted value. It is returned to the host, which calls Build once per
// draw with its coordinate system.
type SceneBuilder struct {
	Config Config
	Value  float64
}

// Build assembles the dial: the background arc revealed up to the value,
// the pointer, the inner circle and the centered label. It returns an
// empty scene when cs has no center or the primary color has no asset.
func (b *SceneBuilder) Build(cs CoordSys) *Scene {
	cfg := b.Config
	scene := &Scene{
		Animation: Animation{
			Duration:       cfg.AnimationDuration(),
			UpdateDuration: cfg.AnimationUpdateDuration(),
			Easing:         cfg.AnimationEasing,
			EasingUpdate:   cfg.AnimationEasingUpdate,
		},
	}
	if sz, ok := cs.(interface{ Size() (float64, float64) }); ok {
		scene.Width, scene.Height = sz.Size()
	}

	center, ok := cs.Center()
	if !ok {
		return scene
	}
	asset, err := cfg.PrimaryColor.Asset()
	if err != nil {
		Logger().Warn("dial: no panel asset, scene left empty", "err", err)
		return scene
	}

	endAngle := cs.ValueToAngle(b.Value)
	frame := NewAnimationFrameContext(center, cfg, b.Value)
	bounds := Rect{
		X:      center.X - cfg.OuterRadius,
		Y:      center.Y - cfg.OuterRadius,
		Width:  cfg.OuterRadius * 2,
		Height: cfg.OuterRadius * 2,
	}

	background := ClippedImage{
		Image:  asset,
		Bounds: bounds,
		Clip: Sector{
			Center:      center,
			InnerRadius: cfg.InnerRadius,
			Radius:      cfg.OuterRadius,
			StartAngle:  0,
			EndAngle:    -endAngle,
			Transition:  Transition{Property: PropEndAngle},
		},
	}
	pointer := ClippedImage{
		Image:  asset,
		Bounds: bounds,
		Clip: Polygon{
			Points:     frame.Pointer(endAngle),
			Angle:      endAngle,
			Frame:      frame,
			Transition: Transition{Property: PropPointerAngle},
		},
	}
	circle := Circle{
		Center: center,
		Radius: cfg.InsidePanelRadius,
		Fill:   cfg.CircleColor,
		Shadow: Shadow{Blur: shadowBlur, Color: cfg.PrimaryColor.String()},
	}
	label := Text{
		Content:  FormatLabel(b.Value, cfg),
		Position: center,
		Value:    b.Value,
		Opacity:  1,
		Style: TextStyle{
			FontSize:      labelFontSize,
			FontWeight:    labelFontWeight,
			Fill:          cfg.TextColor,
			Align:         "center",
			VerticalAlign: "middle",
		},
		Frame: frame,
		Transitions: []Transition{
			{Property: PropValue},
			{Property: PropOpacity},
		},
	}

	scene.Root.Children = []Node{background, pointer, circle, label}
	return scene
}

package dial

// ChartProps is what the host chart pipeline hands to Transform after a
// successful data request.
type ChartProps struct {
	Width       float64        `json:"width" mapstructure:"width"`
	Height      float64        `json:"height" mapstructure:"height"`
	FormData    map[string]any `json:"formData" mapstructure:"formData"`
	QueriesData []QueryResult  `json:"queriesData" mapstructure:"queriesData"`
}

// ChartResult is returned to the host. Builder is invoked with the host
// coordinate system to obtain the scene.
type ChartResult struct {
	Width   float64
	Height  float64
	Data    []Row
	Config  Config
	Value   float64
	Builder *SceneBuilder
}

// CoordSys returns the default polar coordinate system for the result.
func (r *ChartResult) CoordSys() PolarCoordSys {
	return NewPolarCoordSys(r.Width, r.Height, r.Config)
}

// Scene builds the scene in the default coordinate system.
func (r *ChartResult) Scene() *Scene {
	return r.Builder.Build(r.CoordSys())
}

// Transform resolves the configuration and extracts the displayed value.
// A configuration or data shape error aborts the pass: no builder is
// returned and nothing must be drawn.
func Transform(props ChartProps) (*ChartResult, error) {
	cfg, err := Resolve(props.FormData)
	if err != nil {
		return nil, err
	}
	metrics := selectedMetrics(props.FormData)
	value, err := ExtractMetric(props.QueriesData, metrics)
	if err != nil {
		return nil, err
	}

	var data []Row
	if len(props.QueriesData) > 0 {
		data = props.QueriesData[0].Data
	}

	Logger().Debug("dial: transform",
		"metric", metrics[0], "value", value,
		"width", props.Width, "height", props.Height)

	return &ChartResult{
		Width:   props.Width,
		Height:  props.Height,
		Data:    data,
		Config:  cfg,
		Value:   value,
		Builder: &SceneBuilder{Config: cfg, Value: value},
	}, nil
}

// selectedMetrics reads the metric selection from form data. Multi-metric
// charts send "metrics"; single-metric controls send "metric".
func selectedMetrics(formData map[string]any) []any {
	raw, ok := formData["metrics"]
	if !ok {
		raw = formData["metric"]
	}
	switch m := raw.(type) {
	case []any:
		return m
	case []string:
		out := make([]any, len(m))
		for i, s := range m {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{m}
	}
}

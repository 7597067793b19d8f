package dial

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InputKind is the control a field is edited with.
type InputKind string

const (
	InputText     InputKind = "text"
	InputSelect   InputKind = "select"
	InputSlider   InputKind = "slider"
	InputCheckbox InputKind = "checkbox"
	InputMetrics  InputKind = "metrics"
	InputFilters  InputKind = "filters"
)

// Choice is one option of a select field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one control of the chart's control panel.
type Field struct {
	Name          string    `json:"name"`
	InputKind     InputKind `json:"inputKind"`
	Label         string    `json:"label"`
	Description   string    `json:"description,omitempty"`
	Default       any       `json:"default,omitempty"`
	Min           *float64  `json:"min,omitempty"`
	Max           *float64  `json:"max,omitempty"`
	Step          *float64  `json:"step,omitempty"`
	Choices       []Choice  `json:"choices,omitempty"`
	Required      bool      `json:"required,omitempty"`
	RenderTrigger bool      `json:"renderTrigger,omitempty"`
}

// Section groups fields under a heading.
type Section struct {
	Label    string  `json:"label"`
	Expanded bool    `json:"expanded"`
	Fields   []Field `json:"fields"`
}

func ptr(v float64) *float64 { return &v }

func slider(name, label, desc string, def, lo, hi, step float64) Field {
	return Field{
		Name: name, InputKind: InputSlider, Label: label, Description: desc,
		Default: def, Min: ptr(lo), Max: ptr(hi), Step: ptr(step), RenderTrigger: true,
	}
}

func textField(name, label, desc string, def any) Field {
	return Field{Name: name, InputKind: InputText, Label: label, Description: desc, Default: def, RenderTrigger: true}
}

// ControlPanel declares the dial's configuration fields with their
// defaults and ranges, plus the inherited query controls.
func ControlPanel() []Section {
	def := DefaultConfig()
	title := cases.Title(language.English)

	choices := make([]Choice, len(PrimaryColors))
	for i, c := range PrimaryColors {
		choices[i] = Choice{Value: c.String(), Label: title.String(c.String())}
	}

	easings := make([]Choice, len(EasingNames))
	for i, name := range EasingNames {
		easings[i] = Choice{Value: name, Label: name}
	}

	return []Section{
		{
			Label:    "Query",
			Expanded: true,
			Fields: []Field{
				{Name: "metrics", InputKind: InputMetrics, Label: "Metrics", Required: true},
				{Name: "adhoc_filters", InputKind: InputFilters, Label: "Filters"},
				{Name: "row_limit", InputKind: InputText, Label: "Row limit", Default: 100},
				textField("valueDenominator", "Fraction Denominator",
					"Sample Space Size. Query result will be divided by this and then multiplied by 100 to give %",
					def.ValueDenominator),
				textField("prefix", "Prefix for Displayed Metric",
					"Appears before the metric displayed in the center", def.Prefix),
				textField("suffix", "Suffix for Displayed Metric",
					"Appears after the metric displayed in the center", def.Suffix),
			},
		},
		{
			Label:    "Colour",
			Expanded: true,
			Fields: []Field{
				textField("circleColor", "Inner Circle Colour",
					"Defines the Colour the Inner Circle. Can use any type of colour definer.", def.CircleColor),
				textField("textColor", "Text Colour",
					"Colour of Text. Can use any type of colour definer.", def.TextColor),
				{
					Name: "primaryColor", InputKind: InputSelect, Label: "Primary Colour",
					Description: "Colour of Chart", Default: def.PrimaryColor.String(),
					Choices: choices, RenderTrigger: true,
				},
			},
		},
		{
			Label:    "Size",
			Expanded: true,
			Fields: []Field{
				slider("outerRadius", "Outer Radius Value", "Outer Radius Size", def.OuterRadius, 0, MaxArcRadius, 10),
				slider("innerRadius", "Inner Radius Value", "Inner Radius Size", def.InnerRadius, 0, MaxArcRadius, 10),
				slider("pointerInnerRadius", "Pointer Radius Value", "Pointer Radius Size", def.PointerInnerRadius, 0, MaxPanelRadius, 1),
				slider("insidePanelRadius", "Inner Circle Radius", "Inner Circle Radius", def.InsidePanelRadius, 0, MaxPanelRadius, 1),
			},
		},
		{
			Label:    "Animation",
			Expanded: true,
			Fields: []Field{
				slider("animationDurationMs", "Animation Duration", "Duration of Animation",
					float64(def.AnimationDurationMs), 0, MaxAnimationDurationMs, 100),
				slider("animationUpdateDurationMs", "Animation Duration Update", "Update Rate of Animation",
					float64(def.AnimationUpdateDurationMs), 0, MaxAnimationDurationMs, 100),
				{
					Name: "animationEasing", InputKind: InputSelect, Label: "Animation Easing",
					Description: "Easing of the entry animation", Default: def.AnimationEasing,
					Choices: easings, RenderTrigger: true,
				},
				{
					Name: "animationEasingUpdate", InputKind: InputSelect, Label: "Animation Easing Update",
					Description: "Easing of value updates", Default: def.AnimationEasingUpdate,
					Choices: easings, RenderTrigger: true,
				},
			},
		},
	}
}

// Fields returns every field of the control panel in declaration order.
func Fields() []Field {
	var out []Field
	for _, s := range ControlPanel() {
		out = append(out, s.Fields...)
	}
	return out
}

package dial

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestControlPanelCoversConfig(t *testing.T) {
	byName := make(map[string]Field)
	for _, f := range Fields() {
		byName[f.Name] = f
	}

	for _, name := range []string{
		"primaryColor", "prefix", "suffix", "circleColor", "textColor",
		"animationDurationMs", "animationUpdateDurationMs",
		"animationEasing", "animationEasingUpdate", "valueDenominator",
		"outerRadius", "innerRadius", "pointerInnerRadius", "insidePanelRadius",
		"metrics", "adhoc_filters", "row_limit",
	} {
		if _, ok := byName[name]; !ok {
			t.Errorf("control panel has no %q field", name)
		}
	}

	outer := byName["outerRadius"]
	if outer.InputKind != InputSlider {
		t.Errorf("outerRadius InputKind = %v, want %v", outer.InputKind, InputSlider)
	}
	if outer.Max == nil || outer.Step == nil {
		t.Fatal("outerRadius slider has no Max or Step")
	}
	if *outer.Max != 240 {
		t.Errorf("outerRadius Max = %v, want 240", *outer.Max)
	}
	if *outer.Step != 10 {
		t.Errorf("outerRadius Step = %v, want 10", *outer.Step)
	}
	if outer.Default != 150.0 {
		t.Errorf("outerRadius Default = %v, want 150", outer.Default)
	}

	color := byName["primaryColor"]
	if color.InputKind != InputSelect {
		t.Errorf("primaryColor InputKind = %v, want %v", color.InputKind, InputSelect)
	}
	if len(color.Choices) != 7 {
		t.Fatalf("primaryColor has %d choices, want 7", len(color.Choices))
	}
	if got, want := color.Choices[0], (Choice{Value: "red", Label: "Red"}); got != want {
		t.Errorf("first choice = %+v, want %+v", got, want)
	}
	if got, want := color.Choices[6], (Choice{Value: "pink", Label: "Pink"}); got != want {
		t.Errorf("last choice = %+v, want %+v", got, want)
	}

	if got := byName["row_limit"].Default; got != 100 {
		t.Errorf("row_limit Default = %v, want 100", got)
	}
}

func TestControlPanelEasingFields(t *testing.T) {
	byName := make(map[string]Field)
	for _, f := range Fields() {
		byName[f.Name] = f
	}
	def := DefaultConfig()

	for name, want := range map[string]string{
		"animationEasing":       def.AnimationEasing,
		"animationEasingUpdate": def.AnimationEasingUpdate,
	} {
		f := byName[name]
		if f.InputKind != InputSelect {
			t.Errorf("%s InputKind = %v, want %v", name, f.InputKind, InputSelect)
		}
		if f.Default != want {
			t.Errorf("%s Default = %v, want %q", name, f.Default, want)
		}
		if len(f.Choices) != len(EasingNames) {
			t.Fatalf("%s has %d choices, want %d", name, len(f.Choices), len(EasingNames))
		}
		found := false
		for i, c := range f.Choices {
			if c.Value != EasingNames[i] {
				t.Errorf("%s choice %d = %q, want %q", name, i, c.Value, EasingNames[i])
			}
			found = found || c.Value == want
		}
		if !found {
			t.Errorf("%s default %q is not among its choices", name, want)
		}
	}
}

func TestControlPanelDefaultsResolve(t *testing.T) {
	formData := make(map[string]any)
	for _, f := range Fields() {
		if f.Default != nil {
			formData[f.Name] = f.Default
		}
	}
	cfg, err := Resolve(formData)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := DefaultConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestControlPanelJSON(t *testing.T) {
	data, err := json.Marshal(ControlPanel())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"inputKind":"slider"`) {
		t.Errorf("control panel JSON has no slider field: %s", data)
	}
}

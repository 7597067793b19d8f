package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/gogpu/dial"
)

// loadProps reads chart props from a JSON, YAML or TOML file. Key case is
// preserved: metric labels and form data keys are case sensitive.
func loadProps(path string) (dial.ChartProps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dial.ChartProps{}, err
	}
	return decodeProps(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."), data)
}

func decodeProps(format string, data []byte) (dial.ChartProps, error) {
	var raw map[string]any
	switch format {
	case "json", "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return dial.ChartProps{}, fmt.Errorf("decode props: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return dial.ChartProps{}, fmt.Errorf("decode props: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return dial.ChartProps{}, fmt.Errorf("decode props: %w", err)
		}
	default:
		return dial.ChartProps{}, fmt.Errorf("decode props: unsupported format %q", format)
	}

	var props dial.ChartProps
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &props,
		WeaklyTypedInput: true,
		DecodeHook:       numberHook,
	})
	if err != nil {
		return dial.ChartProps{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return dial.ChartProps{}, fmt.Errorf("decode props: %w", err)
	}
	return props, nil
}

// numberHook turns json.Number into float64 for the numeric props fields.
// Values inside form data and rows keep their decoded type.
func numberHook(from, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Float64 {
		return data, nil
	}
	return n.Float64()
}

package dial

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestExtractMetric(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		metrics []any
		want    float64
	}{
		{"float", Row{"count": 42.5}, []any{"count"}, 42.5},
		{"int", Row{"count": 7}, []any{"count"}, 7},
		{"int64", Row{"count": int64(-3)}, []any{"count"}, -3},
		{"json number", Row{"count": json.Number("12.25")}, []any{"count"}, 12.25},
		{"numeric string", Row{"count": " 9 "}, []any{"count"}, 9},
		{"first metric wins", Row{"a": 1, "b": 2}, []any{"b", "a"}, 2},
		{"adhoc metric label", Row{"SUM(power)": 88}, []any{map[string]any{"label": "SUM(power)", "expressionType": "SIMPLE"}}, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractMetric([]QueryResult{{Data: []Row{tt.row, {"count": 1000}}}}, tt.metrics)
			if err != nil {
				t.Fatalf("ExtractMetric: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractMetricDataShape(t *testing.T) {
	rows := func(r ...Row) []QueryResult { return []QueryResult{{Data: r}} }
	tests := []struct {
		name    string
		queries []QueryResult
		metrics []any
	}{
		{"no queries", nil, []any{"count"}},
		{"empty rows", rows(), []any{"count"}},
		{"nil row", rows(nil), []any{"count"}},
		{"no metric", rows(Row{"count": 1}), nil},
		{"unlabeled metric", rows(Row{"count": 1}), []any{map[string]any{"sqlExpression": "1"}}},
		{"metric missing", rows(Row{"other": 1}), []any{"count"}},
		{"nil value", rows(Row{"count": nil}), []any{"count"}},
		{"bool value", rows(Row{"count": true}), []any{"count"}},
		{"text value", rows(Row{"count": "n/a"}), []any{"count"}},
		{"nan", rows(Row{"count": math.NaN()}), []any{"count"}},
		{"inf", rows(Row{"count": math.Inf(1)}), []any{"count"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractMetric(tt.queries, tt.metrics)
			if err == nil {
				t.Fatal("ExtractMetric succeeded, want error")
			}
			if !errors.Is(err, ErrDataShape) {
				t.Errorf("error %v should wrap ErrDataShape", err)
			}
			var shapeErr *DataShapeError
			if !errors.As(err, &shapeErr) {
				t.Errorf("error %v is not a *DataShapeError", err)
			}
		})
	}
}

func TestMetricLabel(t *testing.T) {
	if label, ok := MetricLabel("count"); !ok || label != "count" {
		t.Errorf("MetricLabel(\"count\") = (%q, %v), want (\"count\", true)", label, ok)
	}
	if _, ok := MetricLabel(""); ok {
		t.Error("MetricLabel(\"\") should fail")
	}
	if _, ok := MetricLabel(42); ok {
		t.Error("MetricLabel(42) should fail")
	}
}

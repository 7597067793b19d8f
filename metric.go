package dial

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Row maps a column or metric label to its value.
type Row = map[string]any

// QueryResult is one result set returned by the chart data endpoint.
type QueryResult struct {
	Data     []Row  `json:"data" mapstructure:"data"`
	RowCount int    `json:"rowcount" mapstructure:"rowcount"`
	Query    string `json:"query,omitempty" mapstructure:"query"`
}

// MetricLabel returns the column label of a metric selection. Saved
// metrics are plain strings; adhoc metrics are objects carrying a label.
func MetricLabel(metric any) (string, bool) {
	switch m := metric.(type) {
	case string:
		return m, m != ""
	case map[string]any:
		label, ok := m["label"].(string)
		return label, ok && label != ""
	default:
		return "", false
	}
}

// ExtractMetric returns the value of the first selected metric in the
// first row of the first query result. Any missing or non-numeric value
// fails with a *DataShapeError.
func ExtractMetric(queries []QueryResult, metrics []any) (float64, error) {
	if len(metrics) == 0 {
		return 0, &DataShapeError{Reason: "no metric selected"}
	}
	label, ok := MetricLabel(metrics[0])
	if !ok {
		return 0, &DataShapeError{Reason: "metric selection has no label"}
	}
	if len(queries) == 0 {
		return 0, &DataShapeError{Metric: label, Reason: "no query results"}
	}
	rows := queries[0].Data
	if len(rows) == 0 || rows[0] == nil {
		return 0, &DataShapeError{Metric: label, Reason: "query returned no rows"}
	}
	raw, ok := rows[0][label]
	if !ok {
		return 0, &DataShapeError{Metric: label, Reason: "metric missing from first row"}
	}
	v, ok := toFloat(raw)
	if !ok {
		return 0, &DataShapeError{Metric: label, Reason: "value is not numeric"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DataShapeError{Metric: label, Reason: "value is not finite"}
	}
	return v, nil
}

// toFloat converts the numeric kinds a decoded query row can carry.
// Booleans are rejected even though they are often coerced to 0/1.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

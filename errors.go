package dial

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dial package. Typed errors below unwrap to one
// of these so callers can branch with errors.Is.
var (
	// ErrConfiguration is returned when a chart configuration value cannot
	// be used, even after clamping.
	ErrConfiguration = errors.New("dial: invalid configuration")

	// ErrDataShape is returned when query results do not carry a usable
	// value for the selected metric. The pass must be aborted.
	ErrDataShape = errors.New("dial: unexpected data shape")
)

// ConfigError reports a configuration field that could not be resolved.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("dial: invalid configuration field %q (%v): %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigError) Unwrap() error { return e.Err }

// DataShapeError reports why no value could be extracted from a query
// result.
type DataShapeError struct {
	Metric string
	Reason string
}

func (e *DataShapeError) Error() string {
	if e.Metric == "" {
		return "dial: unexpected data shape: " + e.Reason
	}
	return fmt.Sprintf("dial: unexpected data shape for metric %q: %s", e.Metric, e.Reason)
}

// Is reports whether target is ErrDataShape.
func (e *DataShapeError) Is(target error) bool { return target == ErrDataShape }

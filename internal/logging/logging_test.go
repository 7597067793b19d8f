package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "info", Format: FormatJSON, NoTimestamp: true})
	require.NoError(t, err)
	l.Info().Str("k", "v").Msg("hello")
	l.Debug().Msg("hidden")
	assert.JSONEq(t, `{"level":"info","k":"v","message":"hello"}`, buf.String())

	buf.Reset()
	l, err = New(&buf, Options{Level: "info"})
	require.NoError(t, err)
	l.Info().Msg("console")
	assert.Contains(t, buf.String(), "console")

	_, err = New(&buf, Options{Format: "xml"})
	assert.Error(t, err)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Warn("dial: clamped",
		"field", "innerRadius",
		"value", 300.5,
		"n", 3,
		"ok", true,
		"took", 2*time.Millisecond,
		"err", errors.New("boom"),
	)
	m := decode(t, &buf)
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "dial: clamped", m["message"])
	assert.Equal(t, "innerRadius", m["field"])
	assert.Equal(t, 300.5, m["value"])
	assert.Equal(t, float64(3), m["n"])
	assert.Equal(t, true, m["ok"])
	assert.Equal(t, "boom", m["err"])
	assert.Contains(t, m, "took")
}

func TestSlogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debug("debug")
	logger.Info("info")
	assert.Zero(t, buf.Len())
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))

	logger.Error("error")
	assert.Equal(t, "error", decode(t, &buf)["level"])
}

func TestSlogHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf)).
		With("component", "anim").
		WithGroup("transition").
		With("gen", 7)

	logger.Info("start", slog.Group("target", "value", 42.0), "duration", "1s")
	m := decode(t, &buf)
	assert.Equal(t, "anim", m["component"])
	assert.Equal(t, float64(7), m["transition.gen"])
	assert.Equal(t, 42.0, m["transition.target.value"])
	assert.Equal(t, "1s", m["transition.duration"])
}

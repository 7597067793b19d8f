// Package logging builds the zerolog logger used by the dial command and
// bridges log/slog records from the library packages into it.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the output encoding.
type Format string

const (
	// FormatConsole writes human readable, colorized lines.
	FormatConsole Format = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	Level  string
	Format Format
	// NoTimestamp drops the timestamp, for output already stamped by a
	// service manager.
	NoTimestamp bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	switch opts.Format {
	case FormatConsole, "":
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		if opts.NoTimestamp {
			cw.FormatTimestamp = func(any) string { return "" }
		}
		out = cw
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	ctx := zerolog.New(out).Level(level).With()
	if !opts.NoTimestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger(), nil
}

// ParseLevel maps a level name to a zerolog level. The empty string means
// warn.
func ParseLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "warning" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

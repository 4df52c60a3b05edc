// Package logger builds the structured slog logger used across the application.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"logistics/internal/pkg/errs"
)

// Formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("log level", err)
	}
	return l, nil
}

// New creates a logger writing to w in the given format and level.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: l}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatJSON, "":
		handler = slog.NewJSONHandler(w, opts)
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"log format",
			fmt.Errorf("%q is neither %s nor %s", format, FormatJSON, FormatText),
		)
	}

	return slog.New(handler), nil
}

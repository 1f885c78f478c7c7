// Package rlog builds a [slog.Handler] from CLI-supplied level/format
// strings, following the shape of this module's teacher's own logging
// package.
package rlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Handler is the slog handler type this package produces.
type Handler = slog.Handler

// Format is the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatText outputs logs as human-readable key=value lines.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("rlog: invalid argument")
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("rlog: unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("rlog: unknown log format")
)

// AllLevelStrings lists the accepted --log-level values.
func AllLevelStrings() []string { return []string{"debug", "info", "warn", "error"} }

// AllFormatStrings lists the accepted --log-format values.
func AllFormatStrings() []string { return []string{string(FormatText), string(FormatJSON)} }

// NewHandlerFromStrings parses logLevel/logFormat and builds a Handler
// that writes to w.
func NewHandlerFromStrings(w io.Writer, logLevel, logFormat string) (Handler, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}

// NewHandler builds a Handler with the given level and format.
func NewHandler(w io.Writer, level slog.Level, format Format) Handler {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// ParseLevel parses a log level string.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, ErrUnknownLevel
}

// ParseFormat parses a log format string.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if f == FormatJSON || f == FormatText {
		return f, nil
	}
	return "", ErrUnknownFormat
}

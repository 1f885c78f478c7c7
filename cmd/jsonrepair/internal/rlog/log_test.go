package rlog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-jsonrepair/jsonrepair/cmd/jsonrepair/internal/rlog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    slog.Level
		expectError bool
	}{
		"error level":      {"error", slog.LevelError, false},
		"warn level":       {"warn", slog.LevelWarn, false},
		"warning level":    {"warning", slog.LevelWarn, false},
		"info level":       {"info", slog.LevelInfo, false},
		"debug level":      {"debug", slog.LevelDebug, false},
		"case insensitive": {"INFO", slog.LevelInfo, false},
		"unknown level":    {"unknown", 0, true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := rlog.ParseLevel(tc.input)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    rlog.Format
		expectError bool
	}{
		"json format": {"json", rlog.FormatJSON, false},
		"text format": {"text", rlog.FormatText, false},
		"uppercase":   {"JSON", rlog.FormatJSON, false},
		"unknown":     {"yaml", "", true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := rlog.ParseFormat(tc.input)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	h, err := rlog.NewHandlerFromStrings(nil, "debug", "json")
	require.NoError(t, err)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	_, err = rlog.NewHandlerFromStrings(nil, "bogus", "json")
	require.Error(t, err)
}

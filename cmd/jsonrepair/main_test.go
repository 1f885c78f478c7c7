package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRepairsFileToOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")

	require.NoError(t, os.WriteFile(in, []byte(`{ "a": [1, 2`), 0o644))

	cfg := NewConfig()
	cfg.Capacity = 512
	cfg.Output = out

	require.NoError(t, run(cfg, []string{in}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `{ "a": [1, 2]}`, string(got))
}

func TestRunRejectsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"a": 01}`), 0o644))

	cfg := NewConfig()
	cfg.Output = filepath.Join(dir, "out.json")

	err := run(cfg, []string{in})
	require.Error(t, err)
}

func TestRunHonorsMaxDepth(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "deep.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"a": {"b": 1}}`), 0o644))

	cfg := NewConfig()
	cfg.MaxDepth = 1
	cfg.Output = filepath.Join(dir, "out.json")

	err := run(cfg, []string{in})
	require.Error(t, err)
}

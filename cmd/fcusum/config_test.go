package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `data: series.csv
y: price
x:
  - rate
  - spread
kstar: 2
out: result.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "series.csv", cfg.Data)
	require.Equal(t, "price", cfg.Y)
	require.Equal(t, []string{"rate", "spread"}, cfg.X)
	require.Equal(t, 2.0, cfg.KStar)
	require.Equal(t, "result.csv", cfg.Out)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kstar: [not a number"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestSplitColumns(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitColumns(" a, b ,"))
	require.Nil(t, splitColumns(""))
	require.Equal(t, []string{"one"}, splitColumns("one"))
}

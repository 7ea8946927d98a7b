package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile_MissingFileIsDefault(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromFile_PartialOverride(t *testing.T) {
	path := writeConfig(t, "context = 5\ncolor = \"off\"\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Context)
	require.Equal(t, ColorOff, cfg.Color)
	// Unset keys keep defaults.
	require.Equal(t, 0.6, cfg.ModifiedThreshold)
	require.False(t, cfg.IgnoreBlankLines)
}

func TestLoadFromFile_FullConfig(t *testing.T) {
	path := writeConfig(t, `
ignore_blank_lines = true
context = 0
color = "on"
modified_threshold = 0.8
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		IgnoreBlankLines:  true,
		Context:           0,
		Color:             ColorOn,
		ModifiedThreshold: 0.8,
	}, cfg)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"malformed toml", "context = = 3"},
		{"bad color", "color = \"sometimes\""},
		{"negative context", "context = -1"},
		{"threshold out of range", "modified_threshold = 1.5"},
		{"zero threshold", "modified_threshold = 0.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tc.contents))
			require.Error(t, err)
		})
	}
}

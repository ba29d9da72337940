package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"non-square bits":  func(c *Config) { c.Bits = 8 },
		"too many bits":    func(c *Config) { c.Bits = 25 },
		"unknown strategy": func(c *Config) { c.Strategy = "hash" },
		"negative limit":   func(c *Config) { c.Limit = -1 },
		"bad level":        func(c *Config) { c.LogLevel = "trace" },
		"bad connectivity": func(c *Config) { c.Filter.Connectivity = 6 },
		"zero marker size": func(c *Config) { c.Render.MarkerSize = 0 },
		"no out dir":       func(c *Config) { c.Render.OutDir = "" },
		"bad format":       func(c *Config) { c.Render.Format = "bmp" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	for _, bits := range []int{0, 1, 4, 9, 16} {
		cfg := DefaultConfig()
		cfg.Bits = bits
		require.NoError(t, cfg.Validate(), "bits=%d", bits)
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markergen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bits: 4\nrender:\n  rows: 2\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Bits)
	require.Equal(t, 2, cfg.Render.Rows)
	require.Equal(t, 8, cfg.Render.Cols, "unset keys keep defaults")
	require.Equal(t, "linear", cfg.Strategy)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bits: [1, 2\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Bits = 16
	cfg.Strategy = "canonical"
	require.NoError(t, WriteConfig(path, cfg))

	back, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

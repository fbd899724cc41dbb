package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc2023.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, ok := cfg.InputPath(3)
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, `
log:
  level: DEBUG
  format: json
inputs:
  "3": inputs/day03.txt
  5: inputs/day05.txt
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	p, ok := cfg.InputPath(3)
	require.True(t, ok)
	assert.Equal(t, "inputs/day03.txt", p)

	p, ok = cfg.InputPath(5)
	require.True(t, ok)
	assert.Equal(t, "inputs/day05.txt", p)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(writeConfig(t, "log:\n  level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NotNil(t, cfg.Inputs)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	tests := map[string]string{
		"bad level":  "log:\n  level: loud\n",
		"bad format": "log:\n  format: xml\n",
		"bad day":    "inputs:\n  three: x.txt\n",
		"bad yaml":   "log: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultInputDir, cfg.Paths.InputDir)
	assert.Equal(t, DefaultTemplatePath, cfg.Paths.TemplatePath)
	assert.Equal(t, DefaultOutputPath, cfg.Paths.OutputPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("SHIPFILL_PATHS_INPUT_DIR", "elsewhere")
	t.Setenv("SHIPFILL_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "elsewhere", cfg.Paths.InputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields fall back to defaults.
	assert.Equal(t, DefaultTemplatePath, cfg.Paths.TemplatePath)
	assert.Equal(t, DefaultOutputPath, cfg.Paths.OutputPath)
}

func TestValidate_RejectsBadLoggingValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad output", func(c *Config) { c.Logging.Output = "syslog" }},
		{"empty input dir", func(c *Config) { c.Paths.InputDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnsureOutputDir(t *testing.T) {
	base := t.TempDir()

	cfg := Default()
	cfg.Paths.OutputPath = filepath.Join(base, "output", "nested", "out.xlsx")

	require.NoError(t, cfg.EnsureOutputDir())

	info, err := os.Stat(filepath.Join(base, "output", "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

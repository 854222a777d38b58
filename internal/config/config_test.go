package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Lookup.CamelCase)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestLoad_File(t *testing.T) {
	dir := inTempDir(t)

	content := `
cache:
  enabled: false
lookup:
  camel_case: true
log:
  level: debug
  development: true
output:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beanpath.yaml"), []byte(content), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Lookup.CamelCase)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := inTempDir(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)

	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	inTempDir(t)

	t.Setenv("BEANPATH_LOG_LEVEL", "error")
	t.Setenv("BEANPATH_OUTPUT_FORMAT", "json")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Output.Format)

	cfg, err = Load("", map[string]any{"output.format": FormatYAML, "lookup.camel_case": true})
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Lookup.CamelCase)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"format", map[string]any{"output.format": "xml"}},
		{"level", map[string]any{"log.level": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)

			_, err := Load("", tt.overrides)
			require.Error(t, err)
		})
	}
}

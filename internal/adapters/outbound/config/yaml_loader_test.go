package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/openkraft/readability/internal/adapters/outbound/config"
	"github.com/openkraft/readability/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
threshold: 85
format: json
suffixes: [".spec.ts"]
exclude_paths:
  - generated
patterns:
  - "e2e/**"
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threshold)
	assert.Equal(t, 85, *cfg.Threshold)
	assert.Equal(t, domain.FormatJSON, cfg.Format)
	assert.Equal(t, []string{".spec.ts"}, cfg.Suffixes)
	assert.Equal(t, []string{"generated"}, cfg.ExcludePaths)
	assert.Equal(t, []string{"e2e/**"}, cfg.Patterns)
}

func TestYAMLLoader_ZeroThresholdIsExplicit(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `threshold: 0`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threshold)
	assert.Equal(t, 0, cfg.EffectiveThreshold())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .readability.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `threshold: 150`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .readability.yaml")
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestTemplate_IsValidConfig(t *testing.T) {
	var cfg domain.ProjectConfig
	require.NoError(t, yaml.Unmarshal(appconfig.Template(), &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultThreshold, cfg.EffectiveThreshold())
	assert.Equal(t, domain.DefaultSuffixes, cfg.Suffixes)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tuxido.yaml"), []byte(content), 0644))
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	dir := writeConfig(t, `
depth: full
sandbox_timeout_seconds: 10
max_heal_iterations: 3
forbidden_imports:
  - pickle
  - shutil
`)

	cfg, err := New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DepthFull, cfg.Depth)
	assert.Equal(t, 10, cfg.SandboxTimeoutSeconds)
	assert.Equal(t, 3, cfg.MaxHealIterations)
	assert.Equal(t, []string{"pickle", "shutil"}, cfg.ForbiddenImports)
}

func TestLoad_UnsetFieldsFallBackToDefaults(t *testing.T) {
	dir := writeConfig(t, "depth: full\n")

	cfg, err := New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DepthFull, cfg.Depth)
	assert.Equal(t, 5, cfg.SandboxTimeoutSeconds)
	assert.Equal(t, 5, cfg.MaxHealIterations)
}

func TestLoad_InvalidDepthRejected(t *testing.T) {
	dir := writeConfig(t, "depth: turbo\n")

	_, err := New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	dir := writeConfig(t, "depth: [unclosed\n")

	_, err := New().Load(dir)
	assert.Error(t, err)
}

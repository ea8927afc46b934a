package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DepthFast, cfg.Depth)
	assert.Equal(t, 5, cfg.SandboxTimeoutSeconds)
	assert.Equal(t, 5, cfg.MaxHealIterations)
	assert.Empty(t, cfg.ForbiddenImports)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, ProjectConfig{}.Validate())
	assert.NoError(t, ProjectConfig{Depth: DepthFull}.Validate())

	assert.Error(t, ProjectConfig{Depth: "deep"}.Validate())
	assert.Error(t, ProjectConfig{SandboxTimeoutSeconds: -1}.Validate())
	assert.Error(t, ProjectConfig{MaxHealIterations: -1}.Validate())
}

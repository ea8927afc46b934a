package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

const fileName = ".tuxido.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tuxido.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .tuxido.yaml from projectPath. Returns DefaultConfig when
// the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// Unset fields fall back to defaults; explicit values win.
	defaults := domain.DefaultConfig()
	if cfg.Depth == "" {
		cfg.Depth = defaults.Depth
	}
	if cfg.SandboxTimeoutSeconds == 0 {
		cfg.SandboxTimeoutSeconds = defaults.SandboxTimeoutSeconds
	}
	if cfg.MaxHealIterations == 0 {
		cfg.MaxHealIterations = defaults.MaxHealIterations
	}

	return cfg, nil
}

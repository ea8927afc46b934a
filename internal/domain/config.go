package domain

import "fmt"

// Validation depths. Fast runs L1+L2 only; full adds the structural and
// sandbox layers.
const (
	DepthFast = "fast"
	DepthFull = "full"
)

// ProjectConfig holds settings read from .tuxido.yaml.
type ProjectConfig struct {
	// Depth is the default validation depth: "fast" (L1+L2) or "full" (L1-L4).
	Depth string `yaml:"depth"`
	// SandboxTimeoutSeconds bounds L4 execution. Zero means the default.
	SandboxTimeoutSeconds int `yaml:"sandbox_timeout_seconds"`
	// MaxHealIterations bounds the healing loop.
	MaxHealIterations int `yaml:"max_heal_iterations"`
	// ForbiddenImports extends the built-in L2 forbidden import set.
	ForbiddenImports []string `yaml:"forbidden_imports"`
}

// DefaultConfig returns the settings used when no .tuxido.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Depth:                 DepthFast,
		SandboxTimeoutSeconds: 5,
		MaxHealIterations:     5,
	}
}

// Validate catches typos in user-provided raw config before merging.
func (c ProjectConfig) Validate() error {
	if c.Depth != "" && c.Depth != DepthFast && c.Depth != DepthFull {
		return fmt.Errorf("depth must be %q or %q, got %q", DepthFast, DepthFull, c.Depth)
	}
	if c.SandboxTimeoutSeconds < 0 {
		return fmt.Errorf("sandbox_timeout_seconds must be non-negative, got %d", c.SandboxTimeoutSeconds)
	}
	if c.MaxHealIterations < 0 {
		return fmt.Errorf("max_heal_iterations must be non-negative, got %d", c.MaxHealIterations)
	}
	return nil
}

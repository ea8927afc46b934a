package application

import (
	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/analysis"
)

// FrameworkInfo describes the validation environment: tool and runtime
// versions, the detected framework, and the widget catalog the
// structural layer recognizes.
type FrameworkInfo struct {
	Version    string   `json:"version"`
	Runtime    string   `json:"runtime"`
	Framework  *string  `json:"framework"`
	Platform   string   `json:"platform"`
	Widgets    []string `json:"widgets"`
	Deprecated []string `json:"deprecated"`
}

// BuildFrameworkInfo assembles FrameworkInfo from a discovered runtime
// context. Deprecated is currently always empty; the catalog tracks no
// retired widgets yet.
func BuildFrameworkInfo(rc domain.RuntimeContext) FrameworkInfo {
	return FrameworkInfo{
		Version:    rc.Version,
		Runtime:    rc.Runtime,
		Framework:  rc.Framework,
		Platform:   rc.Platform,
		Widgets:    analysis.WidgetCatalog(),
		Deprecated: []string{},
	}
}

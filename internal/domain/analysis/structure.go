package analysis

import (
	"fmt"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

// AnalyzeStructure inspects every class deriving from the Textual App or
// Widget base and reports yielded widgets that lack a stable id. It
// returns foundRoot=false when the file contains no such class at all;
// the orchestrator decides how to report that (the layer stays neutral).
func AnalyzeStructure(file *syntax.File) (findings []domain.Finding, foundRoot bool) {
	for _, class := range file.Classes {
		if !isWidgetClass(class) {
			continue
		}
		foundRoot = true
		for _, y := range class.Yields {
			if y.HasID {
				continue
			}
			findings = append(findings, domain.Finding{
				Level:    domain.LevelStructure,
				Code:     "D003",
				Message:  fmt.Sprintf("Widget %s without ID in %s.compose(). Widgets should have IDs for testing.", y.Type, class.Name),
				Line:     domain.IntPtr(y.Pos.Line),
				Severity: domain.SeverityWarning,
				Remediation: fmt.Sprintf("Add id='some_id' to the %s widget on line %d", y.Type, y.Pos.Line),
			})
		}
	}
	return findings, foundRoot
}

func isWidgetClass(class syntax.Class) bool {
	for _, base := range class.Bases {
		if base == "App" || base == "Widget" {
			return true
		}
	}
	return false
}

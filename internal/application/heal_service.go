package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/analysis"
	"github.com/hbuddenberg/tuxido/internal/domain/healing"
)

// HealOutcome bundles everything one healing run produces: the rewritten
// source, the session report, and the result of re-validating the output.
type HealOutcome struct {
	Source    string                   `json:"source"`
	Converged bool                     `json:"converged"`
	Report    healing.Report           `json:"report"`
	Before    *domain.ValidationResult `json:"before"`
	After     *domain.ValidationResult `json:"after"`
}

// HealService runs the validate-heal-revalidate loop. Validation runs at
// fast depth on both sides of the heal: the engine's rules only address
// statically detectable issues, so the sandbox layer has nothing to add.
type HealService struct {
	validator *ValidateService
	engine    *healing.Engine
}

func NewHealService(validator *ValidateService) *HealService {
	return &HealService{validator: validator, engine: healing.NewEngine()}
}

// Heal validates source, feeds the actionable findings to the healing
// engine, and validates the healed output. Converged means every derived
// issue was resolved; callers should still inspect After for findings the
// rule catalog cannot address.
func (s *HealService) Heal(ctx context.Context, source, filename string, maxIterations int) (*HealOutcome, error) {
	before, err := s.validator.Validate(ctx, source, filename, domain.DepthFast, 0)
	if err != nil {
		return nil, fmt.Errorf("validating before heal: %w", err)
	}

	issues := FindingsToIssues(before.Findings)
	healed, converged := s.engine.Heal(source, issues, maxIterations)

	after, err := s.validator.Validate(ctx, healed, filename, domain.DepthFast, 0)
	if err != nil {
		return nil, fmt.Errorf("validating after heal: %w", err)
	}

	return &HealOutcome{
		Source:    healed,
		Converged: converged,
		Report:    s.engine.Report(),
		Before:    before,
		After:     after,
	}, nil
}

var quotedNameRe = regexp.MustCompile(`'([^']+)'`)

// FindingsToIssues translates pipeline findings into the healing engine's
// issue vocabulary. Findings without a corresponding rule category are
// dropped here rather than fed to the engine, which would carry them as
// permanently pending. Missing-id findings on classes outside the stock
// widget catalog are dropped for the same reason: no rule rewrites custom
// widget constructors.
func FindingsToIssues(findings []domain.Finding) []healing.Issue {
	var issues []healing.Issue
	for _, f := range findings {
		issue := healing.Issue{Code: f.Code, Message: f.Message}
		if f.Line != nil {
			issue.Line = *f.Line
		}

		switch {
		case f.Code == "E201" && strings.Contains(f.Message, "import"):
			m := quotedNameRe.FindStringSubmatch(f.Message)
			if m == nil {
				continue
			}
			issue.Category = healing.CategoryForbiddenImport
			issue.Import = m[1]
		case f.Code == "D003":
			widgetType := widgetTypeFromMessage(f.Message)
			if !analysis.KnownWidget(widgetType) {
				continue
			}
			issue.Category = healing.CategoryWidgetID
			issue.WidgetType = widgetType
		default:
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}

// widgetTypeFromMessage pulls the widget class name out of a D003
// message of the form "Widget <Type> without ID in ...".
func widgetTypeFromMessage(msg string) string {
	fields := strings.Fields(msg)
	if len(fields) >= 2 && fields[0] == "Widget" {
		return fields[1]
	}
	return ""
}

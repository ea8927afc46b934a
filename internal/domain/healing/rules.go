// Package healing implements the self-healing engine: a fixed catalog of
// prioritized corrective text transforms and the iterative loop that
// applies them to unresolved issues until convergence or budget
// exhaustion.
package healing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Issue categories the rules registry knows about. Issues with other
// categories are silently skipped by the engine.
const (
	CategoryMissingWidget    = "missing_widget_in_dom"
	CategoryWidgetID         = "widget_id_mismatch"
	CategoryWidgetLabel      = "widget_label_mismatch"
	CategoryWidgetPosition   = "widget_position_mismatch"
	CategoryWidgetType       = "widget_type_mismatch"
	CategoryUnusedImport     = "unused_import"
	CategoryForbiddenImport  = "forbidden_import"
	CategorySyntaxError      = "syntax_error"
	CategoryAsyncPattern     = "async_pattern"
)

// Issue describes one problem for the engine to resolve. It is looser
// typed than a Finding so callers can feed pipeline output or hand-built
// issues alike; only the fields relevant to the category need be set.
type Issue struct {
	Category   string `json:"category"`
	Import     string `json:"import,omitempty"`
	WidgetType string `json:"widget_type,omitempty"`
	WidgetID   string `json:"widget_id,omitempty"`
	Label      string `json:"label,omitempty"`
	NewLabel   string `json:"new_label,omitempty"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Line       int    `json:"line,omitempty"`
}

// Rule is a named corrective transform bound to one issue category.
// SuccessRate is a declared historical weight used for reporting only; it
// never gates whether the rule is attempted.
type Rule struct {
	Name        string
	Category    string
	Priority    int
	SuccessRate float64
	Transform   func(source string, issue Issue) string
}

// Registry is the fixed catalog of correction rules, grouped by category.
// It is populated at construction and never mutated.
type Registry struct {
	byCategory map[string][]Rule
}

// NewRegistry builds the builtin rule catalog.
func NewRegistry() *Registry {
	return newRegistry(builtinRules())
}

func newRegistry(rules []Rule) *Registry {
	r := &Registry{byCategory: make(map[string][]Rule)}
	for _, rule := range rules {
		r.byCategory[rule.Category] = append(r.byCategory[rule.Category], rule)
	}
	// Ascending priority; ties keep registration order.
	for cat := range r.byCategory {
		sort.SliceStable(r.byCategory[cat], func(i, j int) bool {
			return r.byCategory[cat][i].Priority < r.byCategory[cat][j].Priority
		})
	}
	return r
}

// RulesFor returns the rules addressing a category, ascending by priority.
func (r *Registry) RulesFor(category string) []Rule {
	return r.byCategory[category]
}

func builtinRules() []Rule {
	return []Rule{
		{
			Name:        "fix_unused_import",
			Category:    CategoryUnusedImport,
			Priority:    1,
			SuccessRate: 0.95,
			Transform:   removeImportLines,
		},
		{
			Name:        "fix_widget_id",
			Category:    CategoryWidgetID,
			Priority:    2,
			SuccessRate: 0.92,
			Transform:   addWidgetID,
		},
		{
			Name:        "fix_forbidden_import",
			Category:    CategoryForbiddenImport,
			Priority:    1,
			SuccessRate: 0.85,
			Transform:   removeImportLines,
		},
		{
			Name:        "fix_widget_label",
			Category:    CategoryWidgetLabel,
			Priority:    3,
			SuccessRate: 0.88,
			Transform:   replaceWidgetLabel,
		},
	}
}

// removeImportLines drops every import statement line mentioning the
// issue's import name. Non-import lines are preserved verbatim, order and
// content. A no-op when the issue names no import or nothing matches.
func removeImportLines(source string, issue Issue) string {
	if issue.Import == "" {
		return source
	}
	lines := strings.Split(source, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		isImport := strings.HasPrefix(stripped, "import ") || strings.HasPrefix(stripped, "from ")
		if isImport && strings.Contains(stripped, issue.Import) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// addWidgetID rewrites the first yield of the issue's widget type to carry
// an explicit id keyword. Leaves the source untouched when the yield
// already has an id or no matching yield exists.
func addWidgetID(source string, issue Issue) string {
	widgetType := issue.WidgetType
	if widgetType == "" {
		widgetType = "Widget"
	}
	widgetID := issue.WidgetID
	if widgetID == "" {
		widgetID = strings.ToLower(widgetType) + "_1"
	}

	pattern := regexp.MustCompile(`yield\s+` + regexp.QuoteMeta(widgetType) + `\s*\(\s*["'][^"']*["']?\s*\)`)
	match := pattern.FindString(source)
	if match == "" || strings.Contains(match, "id=") {
		return source
	}

	var replacement string
	if issue.Label != "" {
		replacement = fmt.Sprintf("yield %s(%q, id=%q)", widgetType, issue.Label, widgetID)
	} else {
		replacement = fmt.Sprintf("yield %s(id=%q)", widgetType, widgetID)
	}
	return strings.Replace(source, match, replacement, 1)
}

// replaceWidgetLabel swaps the label of the yield carrying the issue's
// widget id for the issue's new label.
func replaceWidgetLabel(source string, issue Issue) string {
	if issue.WidgetID == "" || issue.NewLabel == "" {
		return source
	}
	pattern := regexp.MustCompile(
		`yield\s+(\w+)\s*\(\s*["'][^"']*["']?\s*,\s*id\s*=\s*["']` + regexp.QuoteMeta(issue.WidgetID) + `["']\s*\)`)
	match := pattern.FindStringSubmatch(source)
	if match == nil {
		return source
	}
	replacement := fmt.Sprintf("yield %s(%q, id=%q)", match[1], issue.NewLabel, issue.WidgetID)
	return strings.Replace(source, match[0], replacement, 1)
}

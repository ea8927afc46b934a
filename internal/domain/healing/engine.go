package healing

import "github.com/google/uuid"

// AppliedFix records one successful rule application.
type AppliedFix struct {
	Iteration   int     `json:"iteration"`
	Rule        string  `json:"rule"`
	Issue       Issue   `json:"issue"`
	SuccessRate float64 `json:"success_rate"`
}

// Report describes one completed healing session.
type Report struct {
	SessionID     string       `json:"session_id"`
	Iterations    int          `json:"iterations"`
	MaxIterations int          `json:"max_iterations"`
	FixesApplied  int          `json:"fixes_applied"`
	Fixes         []AppliedFix `json:"fixes"`
}

// Engine drives iterative application of correction rules. Each Heal call
// runs an isolated session; the engine only retains the last session's
// report, so use one engine per goroutine for concurrent healing.
type Engine struct {
	registry   *Registry
	lastReport Report
}

// NewEngine creates an engine over the builtin rule catalog.
func NewEngine() *Engine {
	return &Engine{registry: NewRegistry()}
}

// Heal applies correction rules to source until every issue is resolved,
// a full pass makes no progress, or the iteration budget runs out. A rule
// counts as applied only when its transform observably changes the text;
// each issue is resolved by at most one rule per call. Issues with
// unknown categories are skipped and stay pending. Returns the healed
// source and whether all issues were resolved.
func (e *Engine) Heal(source string, issues []Issue, maxIterations int) (string, bool) {
	session := Report{
		SessionID:     uuid.NewString(),
		MaxIterations: maxIterations,
		Fixes:         []AppliedFix{},
	}

	current := source
	pending := make([]Issue, len(issues))
	copy(pending, issues)

	for len(pending) > 0 && session.Iterations < maxIterations {
		session.Iterations++
		progressed := false

		remaining := pending[:0:0]
		for _, issue := range pending {
			fixed := false
			for _, rule := range e.registry.RulesFor(issue.Category) {
				next := applyTransform(rule, current, issue)
				if next == current {
					continue
				}
				current = next
				session.Fixes = append(session.Fixes, AppliedFix{
					Iteration:   session.Iterations,
					Rule:        rule.Name,
					Issue:       issue,
					SuccessRate: rule.SuccessRate,
				})
				progressed = true
				fixed = true
				break
			}
			if !fixed {
				remaining = append(remaining, issue)
			}
		}
		pending = remaining

		if !progressed {
			break
		}
	}

	session.FixesApplied = len(session.Fixes)
	e.lastReport = session
	return current, len(pending) == 0
}

// Report returns the last completed session's report. Calling Heal again
// resets it.
func (e *Engine) Report() Report { return e.lastReport }

// applyTransform shields the engine from misbehaving rules: a panicking
// transform is treated as a no-op and the engine falls through to the
// next rule.
func applyTransform(rule Rule, source string, issue Issue) (result string) {
	defer func() {
		if recover() != nil {
			result = source
		}
	}()
	return rule.Transform(source, issue)
}

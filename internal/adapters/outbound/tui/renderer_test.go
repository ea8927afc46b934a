package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/fix"
	"github.com/hbuddenberg/tuxido/internal/domain/healing"
)

func TestRenderResult_FailWithFindings(t *testing.T) {
	result := domain.NewResult([]domain.Finding{
		{
			Level:       domain.LevelStatic,
			Code:        "E201",
			Message:     "Forbidden import 'os' detected. This could be unsafe.",
			Severity:    domain.SeverityError,
			Remediation: "Remove the 'os' import. Use Textual APIs instead.",
		},
		{
			Level:    domain.LevelStructure,
			Code:     "D003",
			Message:  "Widget Button without ID in MyApp.compose(). Widgets should have IDs for testing.",
			Line:     domain.IntPtr(9),
			Severity: domain.SeverityWarning,
		},
	}, domain.RuntimeContext{Version: "dev", Runtime: "python 3.12.1", Platform: "linux"})

	out := RenderResult(result, "app.py")
	assert.Contains(t, out, "tuxido")
	assert.Contains(t, out, "app.py")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "E201")
	assert.Contains(t, out, "D003")
	assert.Contains(t, out, "line 9")
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "1 warnings")
}

func TestRenderResult_Pass(t *testing.T) {
	result := domain.NewResult(nil, domain.RuntimeContext{Version: "dev", Runtime: "unknown"})

	out := RenderResult(result, "app.py")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "No issues found.")
}

func TestRenderHealing(t *testing.T) {
	report := &healing.Report{
		SessionID:     "abc-123",
		Iterations:    2,
		MaxIterations: 5,
		FixesApplied:  1,
		Fixes: []healing.AppliedFix{
			{Iteration: 1, Rule: "fix_unused_import", SuccessRate: 0.95},
		},
	}

	out := RenderHealing(report, true)
	assert.Contains(t, out, "CONVERGED")
	assert.Contains(t, out, "2 / 5 iterations")
	assert.Contains(t, out, "fix_unused_import")
	assert.Contains(t, out, "abc-123")

	out = RenderHealing(&healing.Report{MaxIterations: 5}, false)
	assert.Contains(t, out, "EXHAUSTED")
	assert.Contains(t, out, "No fixes applied.")
}

func TestRenderFixes(t *testing.T) {
	out := RenderFixes(&fix.Summary{
		TotalFixes: 2,
		Fixes: []fix.Applied{
			{Type: "unused_imports", Count: 1, Details: []string{"import os"}},
			{Type: "widget_ids", Count: 1, Details: []string{"Button=button_1"}},
		},
	})
	assert.Contains(t, out, "Applied 2 fixes")
	assert.Contains(t, out, "unused_imports")
	assert.Contains(t, out, "Button=button_1")

	assert.Contains(t, RenderFixes(&fix.Summary{}), "Nothing to fix.")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, RenderHistory(nil), "No validation history found.")

	entries := []domain.RunEntry{
		{
			File:       "app.py",
			Status:     domain.StatusPass,
			CommitHash: "abcdef1234567890",
			Timestamp:  time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		},
	}
	out := RenderHistory(entries)
	assert.Contains(t, out, "Validation History")
	assert.Contains(t, out, "2026-08-31")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "app.py")
}

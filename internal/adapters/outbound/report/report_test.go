package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

func sampleResult() *domain.ValidationResult {
	fw := "textual 0.89.1"
	findings := []domain.Finding{
		{
			Level:    domain.LevelStatic,
			Code:     "E201",
			Message:  "Forbidden import 'os' detected. This could be unsafe.",
			Severity: domain.SeverityError,
		},
		{
			Level:    domain.LevelStructure,
			Code:     "D003",
			Message:  "Widget Button without ID in MyApp.compose(). Widgets should have IDs for testing.",
			Line:     domain.IntPtr(9),
			Severity: domain.SeverityWarning,
		},
	}
	return domain.NewResult(findings, domain.RuntimeContext{
		Version:   "0.2.0",
		Runtime:   "python 3.12.1",
		Framework: &fw,
		Platform:  "linux",
	})
}

func TestHTML_ContainsFindings(t *testing.T) {
	html, err := HTML(sampleResult(), "app.py")
	require.NoError(t, err)

	assert.Contains(t, html, "Tuxido Validation Report")
	assert.Contains(t, html, "app.py")
	assert.Contains(t, html, "E201")
	assert.Contains(t, html, "D003")
	assert.Contains(t, html, "❌ Fail")
	assert.Contains(t, html, "textual 0.89.1")
}

func TestHTML_EscapesMessages(t *testing.T) {
	result := domain.NewResult([]domain.Finding{{
		Level:    domain.LevelStatic,
		Code:     "E201",
		Message:  "call to <script>alert(1)</script>",
		Severity: domain.SeverityError,
	}}, domain.RuntimeContext{Version: "dev", Runtime: "unknown"})

	html, err := HTML(result, "app.py")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHTML_PassWithoutFindings(t *testing.T) {
	result := domain.NewResult(nil, domain.RuntimeContext{Version: "dev", Runtime: "unknown"})

	html, err := HTML(result, "app.py")
	require.NoError(t, err)
	assert.Contains(t, html, "✅ Pass")
	assert.Contains(t, html, "No errors found")
}

func TestMarkdown_Table(t *testing.T) {
	md := Markdown(sampleResult(), "app.py")

	assert.Contains(t, md, "# 🔍 Tuxido Validation Report")
	assert.Contains(t, md, "**File:** `app.py`")
	assert.Contains(t, md, "| Line | Code | Message | Severity |")
	assert.Contains(t, md, "| - | `E201` |")
	assert.Contains(t, md, "| 9 | `D003` |")
	assert.Contains(t, md, "- **Errors:** 1")
	assert.Contains(t, md, "- **Warnings:** 1")
}

func TestMarkdown_NoFindings(t *testing.T) {
	result := domain.NewResult(nil, domain.RuntimeContext{Version: "dev", Runtime: "unknown"})

	md := Markdown(result, "app.py")
	assert.Contains(t, md, "*No errors found*")
	assert.Contains(t, md, "- **Framework:** N/A")
}

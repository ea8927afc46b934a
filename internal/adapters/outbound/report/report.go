// Package report renders validation results as standalone HTML and
// Markdown documents.
package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

type row struct {
	Line     string
	Code     string
	Message  string
	Severity string
	Icon     string
}

type view struct {
	Filename    string
	StatusBadge string
	StatusClass string
	Summary     domain.ValidationSummary
	Rows        []row
	Version     string
	Runtime     string
	Framework   string
	Date        string
}

func buildView(result *domain.ValidationResult, filename string) view {
	v := view{
		Filename:    filename,
		StatusBadge: "❌ Fail",
		StatusClass: "fail",
		Summary:     result.Summary,
		Version:     result.Metadata.Version,
		Runtime:     result.Metadata.Runtime,
		Framework:   "N/A",
		Date:        time.Now().Format("2006-01-02 15:04:05"),
	}
	if result.Status == domain.StatusPass {
		v.StatusBadge = "✅ Pass"
		v.StatusClass = "pass"
	}
	if result.Metadata.Framework != nil {
		v.Framework = *result.Metadata.Framework
	}
	for _, f := range result.Findings {
		r := row{Line: "-", Code: f.Code, Message: f.Message, Severity: f.Severity, Icon: "🟡"}
		if f.Line != nil {
			r.Line = fmt.Sprintf("%d", *f.Line)
		}
		if f.Severity == domain.SeverityError {
			r.Icon = "🔴"
		}
		v.Rows = append(v.Rows, r)
	}
	return v
}

// HTML renders a self-contained HTML report for a validated file.
func HTML(result *domain.ValidationResult, filename string) (string, error) {
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, buildView(result, filename)); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}
	return b.String(), nil
}

// Markdown renders a Markdown report for a validated file.
func Markdown(result *domain.ValidationResult, filename string) string {
	v := buildView(result, filename)

	var b strings.Builder
	b.WriteString("# 🔍 Tuxido Validation Report\n\n")
	fmt.Fprintf(&b, "**File:** `%s`\n", v.Filename)
	fmt.Fprintf(&b, "**Status:** %s\n\n---\n\n", strings.ToUpper(v.StatusBadge))
	b.WriteString("## 📊 Summary\n\n")
	fmt.Fprintf(&b, "- **Total:** %d\n", v.Summary.Total)
	fmt.Fprintf(&b, "- **Errors:** %d\n", v.Summary.Errors)
	fmt.Fprintf(&b, "- **Warnings:** %d\n\n", v.Summary.Warnings)
	b.WriteString("## 📋 Validation Findings\n\n")
	if len(v.Rows) == 0 {
		b.WriteString("*No errors found*\n")
	} else {
		b.WriteString("| Line | Code | Message | Severity |\n")
		b.WriteString("|------|------|---------|----------|\n")
		for _, r := range v.Rows {
			fmt.Fprintf(&b, "| %s | `%s` | %s | %s %s |\n", r.Line, r.Code, r.Message, r.Icon, r.Severity)
		}
	}
	b.WriteString("\n---\n\n## 🔧 Metadata\n\n")
	fmt.Fprintf(&b, "- **tuxido:** %s\n", v.Version)
	fmt.Fprintf(&b, "- **Runtime:** %s\n", v.Runtime)
	fmt.Fprintf(&b, "- **Framework:** %s\n", v.Framework)
	fmt.Fprintf(&b, "- **Date:** %s\n", v.Date)
	return b.String()
}

// Save writes report content to a file.
func Save(content, path string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Tuxido Validation Report - {{.Filename}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
            min-height: 100vh;
            padding: 40px 20px;
        }
        .container {
            max-width: 1000px;
            margin: 0 auto;
            background: white;
            border-radius: 16px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px 40px;
        }
        .header h1 { font-size: 28px; margin-bottom: 10px; }
        .status {
            display: inline-block;
            padding: 8px 20px;
            border-radius: 20px;
            font-weight: bold;
            font-size: 16px;
        }
        .status.pass { background: #10b981; color: white; }
        .status.fail { background: #ef4444; color: white; }
        .summary {
            display: grid;
            grid-template-columns: repeat(3, 1fr);
            gap: 20px;
            padding: 30px 40px;
            background: #f8fafc;
        }
        .summary-item {
            text-align: center;
            padding: 20px;
            background: white;
            border-radius: 12px;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.05);
        }
        .summary-item .value { font-size: 36px; font-weight: bold; color: #1e293b; }
        .summary-item .label { font-size: 14px; color: #64748b; margin-top: 5px; }
        .summary-item.errors .value { color: #ef4444; }
        .summary-item.warnings .value { color: #f59e0b; }
        .summary-item.total .value { color: #3b82f6; }
        table { width: 100%; border-collapse: collapse; }
        .findings { padding: 0 40px 40px; }
        .findings h2 {
            font-size: 20px;
            color: #1e293b;
            margin: 30px 0 20px;
            padding-bottom: 10px;
            border-bottom: 2px solid #e2e8f0;
        }
        .findings th {
            text-align: left;
            padding: 15px;
            background: #f1f5f9;
            color: #475569;
            font-weight: 600;
            font-size: 14px;
        }
        .findings td {
            padding: 15px;
            border-bottom: 1px solid #e2e8f0;
            color: #334155;
        }
        .findings tr:hover { background: #f8fafc; }
        .findings code {
            background: #f1f5f9;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 13px;
            color: #7c3aed;
        }
        .metadata {
            padding: 20px 40px;
            background: #1e293b;
            color: #94a3b8;
            font-size: 13px;
        }
        .metadata-grid {
            display: grid;
            grid-template-columns: repeat(4, 1fr);
            gap: 15px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🔍 Tuxido Validation Report</h1>
            <p style="opacity: 0.9; font-size: 16px;">{{.Filename}}</p>
            <span class="status {{.StatusClass}}" style="margin-top: 15px;">{{.StatusBadge}}</span>
        </div>

        <div class="summary">
            <div class="summary-item total">
                <div class="value">{{.Summary.Total}}</div>
                <div class="label">Total Findings</div>
            </div>
            <div class="summary-item errors">
                <div class="value">{{.Summary.Errors}}</div>
                <div class="label">Errors</div>
            </div>
            <div class="summary-item warnings">
                <div class="value">{{.Summary.Warnings}}</div>
                <div class="label">Warnings</div>
            </div>
        </div>

        <div class="findings">
            <h2>📋 Validation Findings</h2>
            <table>
                <thead>
                    <tr>
                        <th>Line</th>
                        <th>Code</th>
                        <th>Message</th>
                        <th>Severity</th>
                    </tr>
                </thead>
                <tbody>
                    {{- if .Rows}}
                    {{- range .Rows}}
                    <tr>
                        <td>{{.Line}}</td>
                        <td><code>{{.Code}}</code></td>
                        <td>{{.Message}}</td>
                        <td>{{.Icon}} {{.Severity}}</td>
                    </tr>
                    {{- end}}
                    {{- else}}
                    <tr>
                        <td colspan="4" style="text-align: center; color: #666;">No errors found</td>
                    </tr>
                    {{- end}}
                </tbody>
            </table>
        </div>

        <div class="metadata">
            <div class="metadata-grid">
                <div><strong>tuxido:</strong> {{.Version}}</div>
                <div><strong>Runtime:</strong> {{.Runtime}}</div>
                <div><strong>Framework:</strong> {{.Framework}}</div>
                <div><strong>Date:</strong> {{.Date}}</div>
            </div>
        </div>
    </div>
</body>
</html>
`))

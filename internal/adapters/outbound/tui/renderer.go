package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/fix"
	"github.com/hbuddenberg/tuxido/internal/domain/healing"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	codeStyle     = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a validation result for terminal output.
func RenderResult(result *domain.ValidationResult, filename string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("tuxido")
	subtitle := dimStyle.Render(filename)
	statusStyled := renderStatus(result.Status)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusStyled))
	b.WriteString("\n\n")

	// ── Findings ──
	if len(result.Findings) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		if result.Summary.Errors > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", result.Summary.Errors)))
			b.WriteString("  ")
		}
		if result.Summary.Warnings > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", result.Summary.Warnings)))
		}
		b.WriteString("\n\n")

		for _, f := range result.Findings {
			renderFinding(&b, f)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	renderMetadata(&b, result.Metadata)
	b.WriteString("\n")
	return b.String()
}

func renderStatus(status string) string {
	switch status {
	case domain.StatusPass:
		return passStyle.Bold(true).Render("PASS")
	case domain.StatusFail:
		return failStyle.Bold(true).Render("FAIL")
	case domain.StatusSkipped:
		return dimStyle.Bold(true).Render("SKIPPED")
	default:
		return failStyle.Bold(true).Render("ERROR")
	}
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := severityTag(f.Severity)
	loc := ""
	if f.Line != nil {
		loc = fmt.Sprintf("line %d", *f.Line)
		if f.Column != nil {
			loc += fmt.Sprintf(":%d", *f.Column)
		}
	}

	head := fmt.Sprintf("    %s %s %s", tag, codeStyle.Render(f.Code), dimStyle.Render(loc))
	b.WriteString(strings.TrimRight(head, " "))
	b.WriteString("\n")
	fmt.Fprintf(b, "         %s\n", f.Message)
	if f.Remediation != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render(f.Remediation))
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return dimStyle.Render("info ")
	}
}

func renderMetadata(b *strings.Builder, md domain.Metadata) {
	fw := "n/a"
	if md.Framework != nil {
		fw = *md.Framework
	}
	fmt.Fprintf(b, "  %s\n", faintStyle.Render(
		fmt.Sprintf("tuxido %s · %s · %s", md.Version, md.Runtime, fw)))
}

// RenderHealing formats a healing session report.
func RenderHealing(report *healing.Report, converged bool) string {
	var b strings.Builder

	outcome := failStyle.Bold(true).Render("EXHAUSTED")
	if converged {
		outcome = passStyle.Bold(true).Render("CONVERGED")
	}

	title := headerStyle.Render("tuxido heal")
	iterations := dimStyle.Render(fmt.Sprintf("%d / %d iterations", report.Iterations, report.MaxIterations))

	b.WriteString(boxStyle.Render(title + "\n" + iterations + "\n\n" + outcome))
	b.WriteString("\n\n")

	if len(report.Fixes) == 0 {
		b.WriteString("  " + dimStyle.Render("No fixes applied.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Applied %d fixes", report.FixesApplied)) + "\n\n")
	for _, f := range report.Fixes {
		fmt.Fprintf(&b, "    %s %s  %s\n",
			passStyle.Render("✓"),
			f.Rule,
			dimStyle.Render(fmt.Sprintf("iteration %d, %.0f%% success rate", f.Iteration, f.SuccessRate*100)),
		)
	}
	b.WriteString("\n  " + faintStyle.Render("session "+report.SessionID) + "\n")
	return b.String()
}

// RenderFixes formats a deterministic fix summary.
func RenderFixes(summary *fix.Summary) string {
	var b strings.Builder
	if summary.TotalFixes == 0 {
		b.WriteString("  " + dimStyle.Render("Nothing to fix.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Applied %d fixes", summary.TotalFixes)) + "\n\n")
	for _, f := range summary.Fixes {
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("✓"),
			f.Type,
			dimStyle.Render(fmt.Sprintf("(%d)", f.Count)),
		)
		for _, d := range f.Details {
			fmt.Fprintf(&b, "      %s\n", faintStyle.Render(d))
		}
	}
	return b.String()
}

// RenderHistory formats validation run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		status := renderStatus(e.Status)
		counts := dimStyle.Render(fmt.Sprintf("%d errors, %d warnings", e.Summary.Errors, e.Summary.Warnings))

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			status,
			e.File,
			counts,
		)
	}

	return b.String()
}

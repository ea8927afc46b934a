// Package application wires the domain layers into the use cases the
// inbound adapters expose: pipeline validation and self-healing.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/analysis"
	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

// DefaultSandboxTimeout bounds L4 execution when the caller passes none.
const DefaultSandboxTimeout = 5 * time.Second

const maxStderrLen = 200

// ValidateService runs the layered validation pipeline: L1 syntax, L2
// static analysis, and at full depth L3 structure and L4 sandboxed
// execution. L1 is the only short-circuiting layer; every later layer
// contributes findings to a single aggregated result.
type ValidateService struct {
	parser         domain.SourceParser
	sandbox        domain.SandboxRunner
	rc             domain.RuntimeContext
	extraForbidden []string
}

// NewValidateService creates a ValidateService. extraForbidden augments
// the built-in forbidden import set, typically from project config.
func NewValidateService(
	parser domain.SourceParser,
	sandbox domain.SandboxRunner,
	rc domain.RuntimeContext,
	extraForbidden []string,
) *ValidateService {
	return &ValidateService{
		parser: parser, sandbox: sandbox,
		rc: rc, extraForbidden: extraForbidden,
	}
}

// Validate runs the pipeline over source at the given depth. A zero
// timeout selects the default sandbox timeout. The filename only labels
// output; it never affects validation semantics.
func (s *ValidateService) Validate(ctx context.Context, source, filename, depth string, timeout time.Duration) (*domain.ValidationResult, error) {
	if depth != domain.DepthFast && depth != domain.DepthFull {
		return nil, fmt.Errorf("unknown depth %q", depth)
	}

	// L1: empty input and parse failures end the pipeline immediately.
	if strings.TrimSpace(source) == "" {
		return domain.NewResult([]domain.Finding{{
			Level:       domain.LevelSyntax,
			Code:        "E103",
			Message:     "Code cannot be empty",
			Severity:    domain.SeverityError,
			Remediation: "Add Python code to the file",
		}}, s.rc), nil
	}

	file, err := s.parser.Parse(source)
	if err != nil {
		var parseErr *syntax.ParseError
		var encErr *syntax.EncodingError
		switch {
		case errors.As(err, &parseErr):
			f := domain.Finding{
				Level:       domain.LevelSyntax,
				Code:        "E101",
				Message:     fmt.Sprintf("Syntax error at line %d: %s", parseErr.Line, parseErr.Message),
				Line:        domain.IntPtr(parseErr.Line),
				Severity:    domain.SeverityError,
				Remediation: fmt.Sprintf("Fix syntax error at line %d: %s", parseErr.Line, parseErr.Message),
			}
			if parseErr.Column > 0 {
				f.Column = domain.IntPtr(parseErr.Column)
			}
			return domain.NewResult([]domain.Finding{f}, s.rc), nil
		case errors.As(err, &encErr):
			return domain.NewResult([]domain.Finding{{
				Level:       domain.LevelSyntax,
				Code:        "E102",
				Message:     fmt.Sprintf("Encoding error: %s", encErr.Reason),
				Severity:    domain.SeverityError,
				Remediation: "Ensure file is UTF-8 encoded",
			}}, s.rc), nil
		default:
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
	}

	// L2 runs at every depth and never short-circuits.
	findings := analysis.AnalyzeStatic(file, s.extraForbidden)

	if depth == domain.DepthFull {
		findings = append(findings, s.runStructure(file)...)

		sandboxFindings, err := s.runSandbox(ctx, source, timeout)
		if err != nil {
			return nil, err
		}
		findings = append(findings, sandboxFindings...)
	}

	return domain.NewResult(findings, s.rc), nil
}

// runStructure is L3. The analysis itself stays neutral about a missing
// application root; the orchestrator turns that into DOM000. On a
// constrained platform DOM001 is emitted up front.
func (s *ValidateService) runStructure(file *syntax.File) []domain.Finding {
	var findings []domain.Finding

	if s.rc.Windows() {
		findings = append(findings, domain.Finding{
			Level:       domain.LevelStructure,
			Code:        "DOM001",
			Message:     "Platform: Windows - L3 DOM Testing: Limited functionality",
			Severity:    domain.SeverityWarning,
			Remediation: "DOM testing works best on Unix systems",
		})
	}

	structural, foundRoot := analysis.AnalyzeStructure(file)
	if !foundRoot {
		return append(findings, domain.Finding{
			Level:       domain.LevelStructure,
			Code:        "DOM000",
			Message:     "L3 DOM Testing skipped: No valid Textual app found",
			Severity:    domain.SeverityWarning,
			Remediation: "Ensure your class inherits from App",
		})
	}
	return append(findings, structural...)
}

// runSandbox is L4. On a constrained platform the layer is skipped with
// a single S000 warning and the runner is never invoked.
func (s *ValidateService) runSandbox(ctx context.Context, source string, timeout time.Duration) ([]domain.Finding, error) {
	if s.rc.Windows() {
		return []domain.Finding{{
			Level:       domain.LevelSandbox,
			Code:        "S000",
			Message:     "Platform: Windows - L4 Sandbox: Limited isolation. Code will run with reduced security restrictions.",
			Severity:    domain.SeverityWarning,
			Remediation: "L4 sandbox works best on Unix systems",
		}}, nil
	}

	if timeout <= 0 {
		timeout = DefaultSandboxTimeout
	}

	outcome, err := s.sandbox.Execute(ctx, source, timeout)
	if err != nil {
		return nil, fmt.Errorf("sandbox execution: %w", err)
	}

	switch {
	case outcome.TimedOut:
		return []domain.Finding{{
			Level:       domain.LevelSandbox,
			Code:        "S001",
			Message:     fmt.Sprintf("Execution timeout after %ds. Possible infinite loop detected.", int(timeout.Seconds())),
			Severity:    domain.SeverityError,
			Remediation: "Check for infinite loops in your code. Consider adding early exit conditions.",
		}}, nil
	case outcome.Restriction != "":
		return []domain.Finding{{
			Level:       domain.LevelSandbox,
			Code:        "S003",
			Message:     fmt.Sprintf("Security restriction triggered: %s", outcome.Restriction),
			Severity:    domain.SeverityError,
			Remediation: "Your code attempted a restricted operation. Use Textual APIs instead.",
		}}, nil
	case outcome.ExitCode != 0:
		return []domain.Finding{{
			Level:       domain.LevelSandbox,
			Code:        "S002",
			Message:     fmt.Sprintf("Execution failed: %s", truncate(outcome.Stderr, maxStderrLen)),
			Severity:    domain.SeverityError,
			Remediation: "Fix the runtime error in your code.",
		}}, nil
	}
	return nil, nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

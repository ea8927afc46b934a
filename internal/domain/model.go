package domain

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Levels identify the validation layer that produced a finding.
const (
	LevelSyntax    = "L1"
	LevelStatic    = "L2"
	LevelStructure = "L3"
	LevelSandbox   = "L4"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Validation statuses. Skipped means a layer could not run on this
// platform or input; it implies neither pass nor fail.
const (
	StatusPass    = "pass"
	StatusFail    = "fail"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Finding is a single issue reported by a validation layer.
type Finding struct {
	Level       string `json:"level" validate:"required,oneof=L1 L2 L3 L4"`
	Code        string `json:"code" validate:"required,finding_code"`
	Message     string `json:"message" validate:"required"`
	Line        *int   `json:"line,omitempty"`
	Column      *int   `json:"column,omitempty"`
	Severity    string `json:"severity" validate:"required,oneof=error warning"`
	Remediation string `json:"remediation"`
}

// ValidationSummary holds aggregate counts over a result's findings.
type ValidationSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Metadata records the runtime context a result was produced under.
type Metadata struct {
	Version   string  `json:"version"`
	Runtime   string  `json:"runtime"`
	Framework *string `json:"framework"`
}

// ValidationResult is the canonical output of every validation layer and
// of the pipeline as a whole.
type ValidationResult struct {
	Status   string            `json:"status"`
	Findings []Finding         `json:"findings"`
	Summary  ValidationSummary `json:"summary"`
	Metadata Metadata          `json:"metadata"`
}

// RuntimeContext carries process-wide version and platform information.
// It is constructed once at startup and threaded into every result builder
// instead of being read from global state.
type RuntimeContext struct {
	Version   string
	Runtime   string
	Framework *string
	Platform  string
}

// Metadata converts the context into result metadata.
func (rc RuntimeContext) Metadata() Metadata {
	return Metadata{Version: rc.Version, Runtime: rc.Runtime, Framework: rc.Framework}
}

// Windows reports whether the context describes a constrained platform
// where DOM testing and sandbox isolation are limited.
func (rc RuntimeContext) Windows() bool { return rc.Platform == "windows" }

// Summarize recomputes aggregate counts from a findings list. The summary
// is always derived, never stored independently.
func Summarize(findings []Finding) ValidationSummary {
	s := ValidationSummary{Total: len(findings)}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
	}
	return s
}

// NewResult builds a result with a derived summary. Status is fail when
// any finding is present, pass otherwise.
func NewResult(findings []Finding, rc RuntimeContext) *ValidationResult {
	status := StatusPass
	if len(findings) > 0 {
		status = StatusFail
	}
	if findings == nil {
		findings = []Finding{}
	}
	return &ValidationResult{
		Status:   status,
		Findings: findings,
		Summary:  Summarize(findings),
		Metadata: rc.Metadata(),
	}
}

// DOM-prefixed codes are the L3 meta-status signals (DOM000, DOM001);
// everything else follows the single-letter taxonomy.
var codePattern = regexp.MustCompile(`^(?:[EWDS]|DOM)\d{3}$`)

var findingValidator = newFindingValidator()

func newFindingValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finding_code", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the finding's structural invariants: code and severity
// always set, code matching the taxonomy pattern, level a known layer.
func (f Finding) Validate() error {
	if err := findingValidator.Struct(f); err != nil {
		return fmt.Errorf("invalid finding %q: %w", f.Code, err)
	}
	return nil
}

// IntPtr returns a pointer to n, for optional line/column fields.
func IntPtr(n int) *int { return &n }

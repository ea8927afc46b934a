package domain

import (
	"context"
	"time"

	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

// SourceParser turns Python source text into the syntax summary consumed
// by the analysis layers. A failed parse is reported through the returned
// error: *syntax.ParseError for syntax errors, *syntax.EncodingError for
// invalid input encoding.
type SourceParser interface {
	Parse(source string) (*syntax.File, error)
}

// ExecOutcome is the result of one sandboxed execution.
type ExecOutcome struct {
	TimedOut    bool
	ExitCode    int
	Stdout      string
	Stderr      string
	Restriction string // non-empty when an OS-level restriction fired
}

// SandboxRunner executes source in an isolated process with a timeout.
// Implementations must terminate and wait on the subprocess before
// returning; no process may outlive the call.
type SandboxRunner interface {
	Execute(ctx context.Context, source string, timeout time.Duration) (*ExecOutcome, error)
}

// ConfigLoader reads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo resolves the commit a validation ran against, for history
// stamping. ok is false outside a git worktree.
type GitInfo interface {
	HeadCommit(projectPath string) (hash string, ok bool)
}

// RunEntry is one recorded validation run.
type RunEntry struct {
	ID         string            `json:"id"`
	File       string            `json:"file"`
	Status     string            `json:"status"`
	Summary    ValidationSummary `json:"summary"`
	CommitHash string            `json:"commit_hash,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// RunHistory persists validation runs per project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

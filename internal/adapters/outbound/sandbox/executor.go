// Package sandbox implements domain.SandboxRunner by executing source in
// an isolated Python subprocess: fresh temporary working directory,
// cleared environment, silenced stdio, hard timeout. The subprocess is
// always terminated and waited on before Execute returns.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

const defaultInterpreter = "python3"

// Executor runs source files under a Python interpreter.
type Executor struct {
	interpreter string
}

// Option configures an Executor.
type Option func(*Executor)

// WithInterpreter overrides the python3 binary, mainly for tests.
func WithInterpreter(path string) Option {
	return func(e *Executor) { e.interpreter = path }
}

// New creates an Executor.
func New(opts ...Option) *Executor {
	e := &Executor{interpreter: defaultInterpreter}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// harness wraps the source so the detected app entry point is
// instantiated and stdio stays quiet.
const harness = `import sys
import os

sys.stdout = open(os.devnull, "w")
sys.stderr = open(os.devnull, "w")

%s

if __name__ == "__main__":
    try:
        if "app" in dir():
            app = app()
            print("APP_CREATED", flush=True)
    except Exception as e:
        print(f"ERROR: {e}", flush=True)
`

// Execute writes the harnessed source to a per-call temporary directory
// and runs it with the configured interpreter under the given timeout.
func (e *Executor) Execute(ctx context.Context, source string, timeout time.Duration) (*domain.ExecOutcome, error) {
	tmpDir, err := os.MkdirTemp("", "tuxido-sandbox-")
	if err != nil {
		return &domain.ExecOutcome{Restriction: err.Error()}, nil
	}
	defer os.RemoveAll(tmpDir)

	appPath := filepath.Join(tmpDir, "test_app.py")
	if err := os.WriteFile(appPath, []byte(fmt.Sprintf(harness, source)), 0o644); err != nil {
		return &domain.ExecOutcome{Restriction: err.Error()}, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.interpreter, appPath)
	cmd.Dir = tmpDir
	cmd.Env = []string{} // cleared environment

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Run waits on the process even when the context kills it, so no
	// subprocess outlives this call.
	runErr := cmd.Run()

	outcome := &domain.ExecOutcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runCtx.Err() == context.DeadlineExceeded {
		outcome.TimedOut = true
		return outcome, nil
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		// Interpreter missing or blocked by the OS.
		outcome.Restriction = runErr.Error()
		return outcome, nil
	}

	return outcome, nil
}

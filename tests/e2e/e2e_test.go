package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "tuxido-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "tuxido")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tuxido")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func writeApp(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

const cleanApp = `from textual.app import App, ComposeResult
from textual.widgets import Button


class DemoApp(App):
    def compose(self) -> ComposeResult:
        yield Button("Go", id="go_btn")
`

// --- Check Tests ---

func TestE2E_CheckPass(t *testing.T) {
	out, code := run(t, "check", writeApp(t, cleanApp))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "PASS")
}

func TestE2E_CheckFail(t *testing.T) {
	out, code := run(t, "check", writeApp(t, "import os\nx = 1\n"))
	assert.Equal(t, 1, code, "should exit 1 on findings")
	assert.Contains(t, out, "E201")
}

func TestE2E_CheckJSON(t *testing.T) {
	out, code := run(t, "check", writeApp(t, cleanApp), "--json")
	assert.Equal(t, 0, code)

	var result domain.ValidationResult
	err := json.Unmarshal([]byte(out), &result)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPass, result.Status)
	assert.Empty(t, result.Findings)
}

func TestE2E_CheckSyntaxError(t *testing.T) {
	out, code := run(t, "check", writeApp(t, "def broken(:\n"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "E101")
}

// --- Heal Tests ---

func TestE2E_HealJSON(t *testing.T) {
	out, code := run(t, "heal", writeApp(t, "import os\nx = 1\nprint(x)\n"), "--dry-run", "--json")
	assert.Equal(t, 0, code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, true, payload["converged"])
}

// --- Generate Tests ---

func TestE2E_Generate(t *testing.T) {
	out, code := run(t, "generate", "--text", "[OK] [Cancel]")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "class GeneratedApp(App)")
	assert.Contains(t, out, "btn_1")
}

// --- Info Test ---

func TestE2E_Info(t *testing.T) {
	out, code := run(t, "info", "--json")
	assert.Equal(t, 0, code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.NotEmpty(t, payload["widgets"])
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "tuxido")
}

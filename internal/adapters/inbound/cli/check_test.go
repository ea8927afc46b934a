package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbuddenberg/tuxido/internal/adapters/inbound/cli"
)

func writeApp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCommand_PassJSON(t *testing.T) {
	path := writeApp(t, "x = 1\nprint(x)\n")

	out, err := runCommand(t, "check", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "pass"`)
	assert.Contains(t, out, `"findings": []`)
}

func TestCheckCommand_FailReturnsError(t *testing.T) {
	path := writeApp(t, "import os\n")

	out, err := runCommand(t, "check", path, "--json")
	require.Error(t, err)
	assert.Contains(t, out, `"code": "E201"`)
}

func TestCheckCommand_EmptyFileIsE103(t *testing.T) {
	path := writeApp(t, "   \n")

	out, err := runCommand(t, "check", path, "--json")
	require.Error(t, err)
	assert.Contains(t, out, `"code": "E103"`)
}

func TestCheckCommand_Stdin(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(bytes.NewBufferString("x = 1\n"))
	cmd.SetArgs([]string{"check", "-", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"status": "pass"`)
}

func TestCheckCommand_WritesMarkdownReport(t *testing.T) {
	path := writeApp(t, "x = 1\n")
	reportPath := filepath.Join(filepath.Dir(path), "validation.md")

	_, err := runCommand(t, "check", path, "--report", reportPath)
	require.NoError(t, err)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Tuxido Validation Report")
}

func TestCheckCommand_RejectsUnknownReportFormat(t *testing.T) {
	path := writeApp(t, "x = 1\n")

	_, err := runCommand(t, "check", path, "--report", "report.pdf")
	assert.Error(t, err)
}

func TestCheckCommand_SavesHistory(t *testing.T) {
	path := writeApp(t, "x = 1\n")
	dir := filepath.Dir(path)

	_, err := runCommand(t, "check", path)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, ".tuxido", "history", "runs.json"))
	assert.NoError(t, statErr)

	out, err := runCommand(t, "check", path, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Validation History")
}

func TestCheckCommand_ConfigExtendsForbiddenImports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tuxido.yaml"), []byte("forbidden_imports:\n  - pickle\n"), 0644))
	path := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(path, []byte("import pickle\n"), 0644))

	out, err := runCommand(t, "check", path, "--json")
	require.Error(t, err)
	assert.Contains(t, out, `"code": "E201"`)
}

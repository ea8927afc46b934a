package fix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

type stubParser struct {
	used map[string]bool
	err  error
}

func (s stubParser) Parse(string) (*syntax.File, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &syntax.File{UsedNames: s.used}, nil
}

func names(ns ...string) map[string]bool {
	m := make(map[string]bool, len(ns))
	for _, n := range ns {
		m[n] = true
	}
	return m
}

func TestFixUnusedImports_RemovesUnused(t *testing.T) {
	source := strings.Join([]string{
		"import os",
		"import sys",
		"",
		"print(sys.argv)",
	}, "\n")

	f := New(stubParser{used: names("sys", "argv", "print")})
	out := f.FixUnusedImports(source)

	assert.NotContains(t, out, "import os")
	assert.Contains(t, out, "import sys")
	assert.Contains(t, out, "print(sys.argv)")
}

func TestFixUnusedImports_PartialFromImport(t *testing.T) {
	source := "from textual.widgets import Button, Static, Input\n\nyield Button(\"Go\")\n"

	f := New(stubParser{used: names("Button", "yield")})
	out := f.FixUnusedImports(source)

	assert.Contains(t, out, "from textual.widgets import Button\n")
	assert.NotContains(t, out, "Static,")
}

func TestFixUnusedImports_MultiModuleImportLine(t *testing.T) {
	source := "import os, sys\nprint(sys.path)\n"

	f := New(stubParser{used: names("sys", "path", "print")})
	out := f.FixUnusedImports(source)

	assert.Contains(t, out, "import sys\n")
	assert.NotContains(t, out, "os")
}

func TestFixUnusedImports_UnparsableSourceUnchanged(t *testing.T) {
	source := "def broken(:\n"
	f := New(stubParser{err: &syntax.ParseError{Line: 1, Message: "unexpected token"}})
	assert.Equal(t, source, f.FixUnusedImports(source))
}

func TestFixMissingWidgetIDs_AddsCounterIDs(t *testing.T) {
	source := strings.Join([]string{
		`        yield Button("Go")`,
		`        yield Button("Stop")`,
		`        yield TextArea()`,
	}, "\n")

	f := New(stubParser{used: names()})
	out := f.FixMissingWidgetIDs(source)

	assert.Contains(t, out, `yield Button("Go", id="button_1")`)
	assert.Contains(t, out, `yield Button("Stop", id="button_2")`)
	assert.Contains(t, out, `yield TextArea(id="text_area_1")`)
}

func TestFixMissingWidgetIDs_LeavesExistingIDs(t *testing.T) {
	source := `        yield Button("Go", id="go")`
	f := New(stubParser{used: names()})
	assert.Equal(t, source, f.FixMissingWidgetIDs(source))
}

func TestFixAll_Summary(t *testing.T) {
	source := strings.Join([]string{
		"import os",
		"",
		`yield Button("Go")`,
	}, "\n")

	f := New(stubParser{used: names("Button")})
	out, summary := f.FixAll(source)

	assert.NotContains(t, out, "import os")
	assert.Contains(t, out, `id="button_1"`)
	assert.Equal(t, 2, summary.TotalFixes)
	require.Len(t, summary.Fixes, 2)
	assert.Equal(t, "unused_imports", summary.Fixes[0].Type)
	assert.Equal(t, "widget_ids", summary.Fixes[1].Type)
}

func TestFixAll_CleanSourceNoFixes(t *testing.T) {
	source := "import sys\nprint(sys.argv)\n"
	f := New(stubParser{used: names("sys", "argv", "print")})

	out, summary := f.FixAll(source)
	assert.Equal(t, source, out)
	assert.Equal(t, 0, summary.TotalFixes)
}

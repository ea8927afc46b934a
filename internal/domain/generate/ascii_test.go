package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sketch = `
╭──────────────────╮
│  Login           │
│  [Name______]    │
│  [OK]  [Cancel]  │
╰──────────────────╯
`

func TestParseLayout_DetectsContainers(t *testing.T) {
	layout := ParseLayout(sketch)

	require.Len(t, layout.Containers, 2)
	assert.Equal(t, "box_start", layout.Containers[0].Type)
	assert.Equal(t, "box_end", layout.Containers[1].Type)
	assert.Equal(t, 18, layout.Containers[0].Width)
}

func TestParseLayout_DetectsWidgets(t *testing.T) {
	layout := ParseLayout(sketch)

	var buttons, inputs, statics []Widget
	for _, w := range layout.Widgets {
		switch w.Kind {
		case KindButton:
			buttons = append(buttons, w)
		case KindInput:
			inputs = append(inputs, w)
		case KindStatic:
			statics = append(statics, w)
		}
	}

	require.Len(t, buttons, 2)
	assert.Equal(t, "OK", buttons[0].Label)
	assert.Equal(t, "Cancel", buttons[1].Label)
	assert.Equal(t, "btn_1", buttons[0].ID)

	require.Len(t, inputs, 1)
	assert.Equal(t, "Name", inputs[0].Placeholder)

	require.Len(t, statics, 1)
	assert.Equal(t, "Login", statics[0].Label)
}

func TestGenerateCode_AllWidgetsGetIDs(t *testing.T) {
	code := FromASCII(sketch, "LoginApp")

	assert.Contains(t, code, "class LoginApp(App):")
	assert.Contains(t, code, "from textual.app import App, ComposeResult")
	assert.Contains(t, code, `yield Button("OK", id="btn_1")`)
	assert.Contains(t, code, `yield Button("Cancel", id="btn_2")`)
	assert.Contains(t, code, `yield Input(placeholder="Name", id="input_1")`)
	assert.Contains(t, code, `yield Static("Login", id="static_1")`)
	assert.Contains(t, code, "def compose(self) -> ComposeResult:")
	assert.Contains(t, code, "app.run()")
}

func TestGenerateCode_EmptyLayout(t *testing.T) {
	code := FromASCII("nothing here", "EmptyApp")

	assert.Contains(t, code, "class EmptyApp(App):")
	assert.Contains(t, code, "pass")
	assert.NotContains(t, code, "yield")
}

func TestGenerateCode_SortedImports(t *testing.T) {
	code := FromASCII(sketch, "LoginApp")

	var importLines []string
	for _, line := range strings.Split(code, "\n") {
		if strings.HasPrefix(line, "from ") {
			importLines = append(importLines, line)
		}
	}
	assert.IsIncreasing(t, importLines)
}

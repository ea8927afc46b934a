// Package generate converts ASCII-art layout sketches into runnable
// Textual application source. It is a plain text-to-text transform,
// separate from the validation core.
package generate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Widget kinds the layout parser recognizes.
const (
	KindButton = "button"
	KindInput  = "input"
	KindStatic = "static"
)

// Widget is one control detected in the sketch.
type Widget struct {
	Kind        string
	ID          string
	Label       string
	Placeholder string
	Row         int
	Col         int
	Width       int
}

// Container is one rounded-box border detected in the sketch.
type Container struct {
	Row   int
	Type  string // box_start or box_end
	Width int
}

// Layout is the structured form of a parsed sketch.
type Layout struct {
	Containers []Container
	Widgets    []Widget
	RawLines   []string
}

var (
	boxRe          = regexp.MustCompile(`╭(─+)╮|╰(─+)╯`)
	buttonRe       = regexp.MustCompile(`\[([A-Za-z][A-Za-z0-9 ]*[A-Za-z0-9])\]`)
	inputRe        = regexp.MustCompile(`\[([_.]+[ _.]*[_.]*)\]`)
	labeledInputRe = regexp.MustCompile(`\[([A-Za-z][A-Za-z0-9]*[_.]+)\]`)
	boxedTextRe    = regexp.MustCompile(`[│|]([^│|]+)[│|]`)
)

// ParseLayout scans the sketch line by line: `[Label]` is a button,
// `[___]` or `[Label___]` an input, bare text between box borders a
// static label, and ╭─╮/╰─╯ runs are container borders.
func ParseLayout(asciiArt string) *Layout {
	lines := strings.Split(asciiArt, "\n")
	layout := &Layout{RawLines: lines}
	counters := make(map[string]int)

	for row, line := range lines {
		if strings.Contains(line, "╭") || strings.Contains(line, "╰") {
			if m := boxRe.FindStringSubmatch(line); m != nil {
				boxType := "box_end"
				if strings.Contains(line, "╭") {
					boxType = "box_start"
				}
				width := len([]rune(m[1]))
				if width == 0 {
					width = len([]rune(m[2]))
				}
				layout.Containers = append(layout.Containers, Container{Row: row, Type: boxType, Width: width})
			}
		}

		for _, m := range buttonRe.FindAllStringSubmatch(line, -1) {
			counters[KindButton]++
			layout.Widgets = append(layout.Widgets, Widget{
				Kind:  KindButton,
				ID:    fmt.Sprintf("btn_%d", counters[KindButton]),
				Label: m[1],
				Row:   row,
				Col:   strings.Index(line, "["+m[1]+"]"),
				Width: len(m[1]) + 2,
			})
		}

		for _, m := range inputRe.FindAllStringSubmatch(line, -1) {
			counters[KindInput]++
			placeholder := strings.TrimSpace(strings.NewReplacer("_", "", ".", "").Replace(m[1]))
			layout.Widgets = append(layout.Widgets, Widget{
				Kind:        KindInput,
				ID:          fmt.Sprintf("input_%d", counters[KindInput]),
				Placeholder: placeholder,
				Row:         row,
				Col:         strings.Index(line, "["+m[1]+"]"),
				Width:       len(m[1]) + 2,
			})
		}

		for _, m := range labeledInputRe.FindAllStringSubmatch(line, -1) {
			counters[KindInput]++
			var placeholder strings.Builder
			for _, c := range m[1] {
				if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
					placeholder.WriteRune(c)
				}
			}
			layout.Widgets = append(layout.Widgets, Widget{
				Kind:        KindInput,
				ID:          fmt.Sprintf("input_%d", counters[KindInput]),
				Placeholder: placeholder.String(),
				Row:         row,
				Col:         strings.Index(line, "["+m[1]+"]"),
				Width:       len(m[1]) + 2,
			})
		}

		for _, m := range boxedTextRe.FindAllStringSubmatch(line, -1) {
			text := strings.TrimSpace(m[1])
			if text == "" || strings.HasPrefix(text, "[") || strings.HasSuffix(text, "]") {
				continue
			}
			counters[KindStatic]++
			layout.Widgets = append(layout.Widgets, Widget{
				Kind:  KindStatic,
				ID:    fmt.Sprintf("static_%d", counters[KindStatic]),
				Label: text,
				Row:   row,
				Col:   strings.Index(line, text),
				Width: len(text),
			})
		}
	}

	return layout
}

// GenerateCode renders a Textual app from a parsed layout. Every widget
// gets an explicit id so the result validates clean at depth full.
func GenerateCode(layout *Layout, appName, title string) string {
	imports := map[string]bool{"from textual.app import App, ComposeResult": true}
	var composeLines, cssLines []string

	for _, w := range layout.Widgets {
		switch w.Kind {
		case KindButton:
			imports["from textual.widgets import Button"] = true
			composeLines = append(composeLines, fmt.Sprintf("        yield Button(%q, id=%q)", w.Label, w.ID))
			cssLines = append(cssLines, fmt.Sprintf("#%s { width: %d; }", w.ID, w.Width))
		case KindInput:
			imports["from textual.widgets import Input"] = true
			composeLines = append(composeLines, fmt.Sprintf("        yield Input(placeholder=%q, id=%q)", w.Placeholder, w.ID))
			cssLines = append(cssLines, fmt.Sprintf("#%s { width: %d; }", w.ID, w.Width))
		case KindStatic:
			imports["from textual.widgets import Static"] = true
			composeLines = append(composeLines, fmt.Sprintf("        yield Static(%q, id=%q)", w.Label, w.ID))
		}
	}

	importList := make([]string, 0, len(imports))
	for imp := range imports {
		importList = append(importList, imp)
	}
	sort.Strings(importList)

	var b strings.Builder
	b.WriteString("from __future__ import annotations\n\n")
	b.WriteString(strings.Join(importList, "\n"))
	b.WriteString("\n\n\n")
	fmt.Fprintf(&b, "class %s(App):\n", appName)
	if title != "" {
		fmt.Fprintf(&b, "    TITLE = %q\n", title)
	}
	b.WriteString("    CSS = \"\"\"\n")
	for _, css := range cssLines {
		b.WriteString("    " + css + "\n")
	}
	b.WriteString("    \"\"\"\n\n")
	b.WriteString("    def compose(self) -> ComposeResult:\n")
	if len(composeLines) == 0 {
		b.WriteString("        pass\n")
	} else {
		b.WriteString(strings.Join(composeLines, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n\nif __name__ == \"__main__\":\n")
	fmt.Fprintf(&b, "    app = %s()\n", appName)
	b.WriteString("    app.run()\n")
	return b.String()
}

// FromASCII converts a sketch straight to Textual source.
func FromASCII(asciiArt, appName string) string {
	return GenerateCode(ParseLayout(asciiArt), appName, "")
}

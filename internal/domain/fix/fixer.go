// Package fix implements batch auto-fixing of mechanical validation
// issues: unused imports and missing widget IDs. Fixes are text-level
// rewrites that preserve every line they do not explicitly target.
package fix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

// Applied records one category of fixes applied to a file.
type Applied struct {
	Type    string   `json:"type"`
	Count   int      `json:"count"`
	Details []string `json:"details,omitempty"`
}

// Summary reports everything a FixAll pass changed.
type Summary struct {
	TotalFixes int       `json:"total_fixes"`
	Fixes      []Applied `json:"fixes"`
}

// Fixer applies auto-fixes to one source file.
type Fixer struct {
	parser domain.SourceParser
	fixes  []Applied
}

// New creates a Fixer using the given parser for used-name analysis.
func New(parser domain.SourceParser) *Fixer {
	return &Fixer{parser: parser}
}

// FixAll applies every auto-fixable rewrite and returns the fixed source
// with a summary of what changed.
func (f *Fixer) FixAll(source string) (string, Summary) {
	f.fixes = nil
	source = f.FixUnusedImports(source)
	source = f.FixMissingWidgetIDs(source)
	return source, Summary{TotalFixes: len(f.fixes), Fixes: f.fixes}
}

var fromImportRe = regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`)

// FixUnusedImports removes import statements whose bound names never
// appear elsewhere in the file. Multi-name imports keep their used names;
// unparsable source is returned unchanged.
func (f *Fixer) FixUnusedImports(source string) string {
	file, err := f.parser.Parse(source)
	if err != nil {
		return source
	}
	used := file.UsedNames

	lines := strings.Split(source, "\n")
	kept := make([]string, 0, len(lines))
	var removed []string

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if m := fromImportRe.FindStringSubmatch(stripped); m != nil {
			module, names := m[1], splitImportNames(m[2])
			var usedNames []string
			for _, name := range names {
				if used[name] {
					usedNames = append(usedNames, name)
				}
			}
			switch {
			case len(usedNames) == 0:
				removed = append(removed, stripped)
			case len(usedNames) == len(names):
				kept = append(kept, line)
			default:
				kept = append(kept, fmt.Sprintf("%sfrom %s import %s", indent, module, strings.Join(usedNames, ", ")))
			}
			continue
		}

		if rest, ok := strings.CutPrefix(stripped, "import "); ok {
			modules := splitImportNames(rest)
			var usedMods []string
			for _, mod := range modules {
				root, _, _ := strings.Cut(mod, ".")
				if used[mod] || used[root] {
					usedMods = append(usedMods, mod)
				}
			}
			switch {
			case len(usedMods) == 0:
				removed = append(removed, stripped)
			case len(usedMods) == len(modules):
				kept = append(kept, line)
			default:
				kept = append(kept, indent+"import "+strings.Join(usedMods, ", "))
			}
			continue
		}

		kept = append(kept, line)
	}

	if len(removed) > 0 {
		f.fixes = append(f.fixes, Applied{Type: "unused_imports", Count: len(removed), Details: removed})
	}
	return strings.Join(kept, "\n")
}

var yieldWidgetRe = regexp.MustCompile(`(yield\s+(Button|Static|Input|TextArea|Header|Footer)\s*)(\(.*\))`)
var hasIDRe = regexp.MustCompile(`id\s*=`)

// FixMissingWidgetIDs adds a generated id keyword to yielded widgets that
// have none. IDs are snake_case of the widget type with a per-type
// counter (text_area_1, button_2, ...).
func (f *Fixer) FixMissingWidgetIDs(source string) string {
	lines := strings.Split(source, "\n")
	counters := make(map[string]int)
	var added []string

	for i, line := range lines {
		m := yieldWidgetRe.FindStringSubmatch(line)
		if m == nil || hasIDRe.MatchString(line) {
			continue
		}
		widgetType := m[2]
		counters[widgetType]++
		id := fmt.Sprintf("%s_%d", snakeCase(widgetType), counters[widgetType])

		args := strings.TrimSuffix(strings.TrimPrefix(m[3], "("), ")")
		var call string
		if strings.TrimSpace(args) != "" {
			call = fmt.Sprintf("%s(%s, id=%q)", m[1], args, id)
		} else {
			call = fmt.Sprintf("%s(id=%q)", m[1], id)
		}
		lines[i] = strings.Replace(line, m[0], call, 1)
		added = append(added, fmt.Sprintf("%s=%s", widgetType, id))
	}

	if len(added) > 0 {
		f.fixes = append(f.fixes, Applied{Type: "widget_ids", Count: len(added), Details: added})
	}
	return strings.Join(lines, "\n")
}

func splitImportNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if base, _, found := strings.Cut(name, " as "); found {
			name = strings.TrimSpace(base)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func snakeCase(name string) string {
	words := camelcase.Split(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// Package parser implements domain.SourceParser for Python source using
// tree-sitter. It reduces the concrete tree to the closed record set in
// domain/syntax; analysis layers never see tree-sitter nodes.
package parser

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

// PythonParser parses Python source with the tree-sitter grammar.
type PythonParser struct {
	parser *sitter.Parser
}

// New creates a PythonParser.
func New() *PythonParser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &PythonParser{parser: p}
}

// Parse builds the syntax summary for source. It returns
// *syntax.EncodingError for non-UTF-8 input and *syntax.ParseError for
// the first syntax error tree-sitter reports.
func (p *PythonParser) Parse(source string) (*syntax.File, error) {
	if !utf8.ValidString(source) {
		return nil, &syntax.EncodingError{Reason: "source is not valid UTF-8"}
	}

	content := []byte(source)
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstParseError(root, content)
	}

	file := &syntax.File{UsedNames: make(map[string]bool)}
	w := &walker{content: content, file: file}
	w.walk(root, scope{})
	return file, nil
}

// firstParseError locates the first ERROR or MISSING node.
func firstParseError(node *sitter.Node, content []byte) *syntax.ParseError {
	if node.IsError() || node.IsMissing() {
		msg := "invalid syntax"
		if node.IsMissing() {
			msg = fmt.Sprintf("missing %s", node.Type())
		} else if ctx := errorText(node, content); ctx != "" {
			msg = fmt.Sprintf("unexpected %q", ctx)
		}
		return &syntax.ParseError{
			Line:    int(node.StartPoint().Row) + 1,
			Column:  int(node.StartPoint().Column),
			Message: msg,
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if e := firstParseError(node.Child(i), content); e != nil {
			return e
		}
	}
	return nil
}

func errorText(node *sitter.Node, content []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if end > uint32(len(content)) {
		end = uint32(len(content))
	}
	if end <= start || end-start > 40 {
		return ""
	}
	return strings.TrimSpace(string(content[start:end]))
}

// scope tracks the enclosing function while walking.
type scope struct {
	funcName string
	async    bool
}

type walker struct {
	content []byte
	file    *syntax.File
}

func (w *walker) walk(node *sitter.Node, sc scope) {
	switch node.Type() {
	case "import_statement":
		w.collectImport(node)
		return
	case "import_from_statement":
		w.collectFromImport(node)
		return
	case "function_definition":
		sc = scope{funcName: w.fieldText(node, "name"), async: isAsyncDef(node)}
	case "class_definition":
		w.collectClass(node)
	case "call":
		w.collectCall(node, sc)
	case "attribute":
		obj := node.ChildByFieldName("object")
		attr := node.ChildByFieldName("attribute")
		if obj != nil && attr != nil && obj.Type() == "identifier" {
			w.file.Attributes = append(w.file.Attributes, syntax.Attribute{
				Object: obj.Content(w.content),
				Attr:   attr.Content(w.content),
				Pos:    pos(node),
			})
		}
		if attr != nil {
			w.file.UsedNames[attr.Content(w.content)] = true
		}
	case "identifier":
		w.file.UsedNames[node.Content(w.content)] = true
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.walk(node.NamedChild(i), sc)
	}
}

func (w *walker) collectImport(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			w.file.Imports = append(w.file.Imports, syntax.Import{
				Module: child.Content(w.content),
				Pos:    pos(node),
			})
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				w.file.Imports = append(w.file.Imports, syntax.Import{
					Module: name.Content(w.content),
					Pos:    pos(node),
				})
			}
		}
	}
}

func (w *walker) collectFromImport(node *sitter.Node) {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return
	}
	imp := syntax.Import{Module: module.Content(w.content), Pos: pos(node)}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == module {
			continue
		}
		switch child.Type() {
		case "dotted_name":
			imp.Names = append(imp.Names, child.Content(w.content))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				imp.Names = append(imp.Names, name.Content(w.content))
			}
		}
	}
	w.file.Imports = append(w.file.Imports, imp)
}

func (w *walker) collectCall(node *sitter.Node, sc scope) {
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return
	}
	target := w.dottedName(fn)
	if target == "" {
		return
	}
	w.file.Calls = append(w.file.Calls, syntax.Call{
		Target:         target,
		Pos:            pos(node),
		EnclosingFunc:  sc.funcName,
		EnclosingAsync: sc.async,
	})
}

// dottedName renders a call target as "name" or "obj.attr". Deeper
// chains and computed targets are out of the matched set.
func (w *walker) dottedName(node *sitter.Node) string {
	switch node.Type() {
	case "identifier":
		return node.Content(w.content)
	case "attribute":
		obj := node.ChildByFieldName("object")
		attr := node.ChildByFieldName("attribute")
		if obj != nil && attr != nil && obj.Type() == "identifier" {
			return obj.Content(w.content) + "." + attr.Content(w.content)
		}
	}
	return ""
}

func (w *walker) collectClass(node *sitter.Node) {
	name := node.ChildByFieldName("name")
	if name == nil {
		return
	}
	class := syntax.Class{Name: name.Content(w.content), Pos: pos(node)}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := supers.NamedChild(i)
			switch base.Type() {
			case "identifier":
				class.Bases = append(class.Bases, base.Content(w.content))
			case "attribute":
				// textual.app.App counts as base App.
				if attr := base.ChildByFieldName("attribute"); attr != nil {
					class.Bases = append(class.Bases, attr.Content(w.content))
				}
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			item := body.NamedChild(i)
			if item.Type() != "function_definition" {
				continue
			}
			if w.fieldText(item, "name") == "compose" {
				class.Yields = append(class.Yields, w.collectYields(item)...)
			}
		}
	}

	w.file.Classes = append(w.file.Classes, class)
}

func (w *walker) collectYields(node *sitter.Node) []syntax.WidgetYield {
	var yields []syntax.WidgetYield
	var visit func(*sitter.Node)
	visit = func(n *sitter.Node) {
		if n.Type() == "yield" {
			for i := 0; i < int(n.NamedChildCount()); i++ {
				if call := n.NamedChild(i); call.Type() == "call" {
					if y, ok := w.widgetYield(call); ok {
						yields = append(yields, y)
					}
				}
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(node)
	return yields
}

func (w *walker) widgetYield(call *sitter.Node) (syntax.WidgetYield, bool) {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return syntax.WidgetYield{}, false
	}

	var widgetType string
	switch fn.Type() {
	case "identifier":
		widgetType = fn.Content(w.content)
	case "attribute":
		if attr := fn.ChildByFieldName("attribute"); attr != nil {
			widgetType = attr.Content(w.content)
		}
	}
	if widgetType == "" {
		return syntax.WidgetYield{}, false
	}

	y := syntax.WidgetYield{Type: widgetType, Pos: pos(call)}
	if args := call.ChildByFieldName("arguments"); args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			kw := args.NamedChild(i)
			if kw.Type() != "keyword_argument" {
				continue
			}
			kwName := kw.ChildByFieldName("name")
			kwValue := kw.ChildByFieldName("value")
			if kwName == nil || kwName.Content(w.content) != "id" {
				continue
			}
			y.HasID = true
			if kwValue != nil && kwValue.Type() == "string" {
				y.ID = strings.Trim(kwValue.Content(w.content), `"'`)
			}
		}
	}
	return y, true
}

func (w *walker) fieldText(node *sitter.Node, field string) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(w.content)
}

// isAsyncDef reports whether a function_definition carries the async
// keyword (an unnamed leading token).
func isAsyncDef(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "async" {
			return true
		}
	}
	return false
}

func pos(node *sitter.Node) syntax.Position {
	return syntax.Position{
		Line:   int(node.StartPoint().Row) + 1,
		Column: int(node.StartPoint().Column),
	}
}

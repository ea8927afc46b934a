// Package syntax defines the language-neutral view of a parsed Python
// source file consumed by the analysis layers. The node kinds are a closed
// set: imports, calls, attribute accesses, classes with their compose
// yields, plus the identifiers referenced anywhere in the file. Parser
// adapters populate these records; analysis never touches the raw tree.
package syntax

import "fmt"

// Position is a 1-based source location. Column may be zero when the
// parser cannot localize more precisely.
type Position struct {
	Line   int
	Column int
}

// Import is one top-level import statement binding.
type Import struct {
	// Module is the imported module path ("os", "textual.app").
	Module string
	// Names holds the bound names for from-imports; empty for plain imports.
	Names []string
	Pos   Position
}

// Root returns the first component of the module path.
func (i Import) Root() string {
	for idx := 0; idx < len(i.Module); idx++ {
		if i.Module[idx] == '.' {
			return i.Module[:idx]
		}
	}
	return i.Module
}

// Call is one call expression, identified by its dotted target name
// ("eval", "time.sleep", "requests.get").
type Call struct {
	Target        string
	Pos           Position
	EnclosingFunc string
	// EnclosingAsync is set when the call occurs inside an async def.
	EnclosingAsync bool
}

// Attribute is one attribute access of the form name.attr.
type Attribute struct {
	Object string
	Attr   string
	Pos    Position
}

// WidgetYield is one widget construction yielded from a compose method.
type WidgetYield struct {
	// Type is the constructed widget type name.
	Type string
	// ID is the value of the id keyword argument, when present.
	ID    string
	HasID bool
	Pos   Position
}

// Class is one class definition with its base names and, when the class
// defines a compose method, the widgets it yields.
type Class struct {
	Name   string
	Bases  []string
	Yields []WidgetYield
	Pos    Position
}

// File is the parsed summary of one source file.
type File struct {
	Imports    []Import
	Calls      []Call
	Attributes []Attribute
	Classes    []Class
	// UsedNames holds every identifier and attribute name referenced in
	// the file, for unused-import detection.
	UsedNames map[string]bool
}

// ParseError reports a syntax error with its source location.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
}

// EncodingError reports source text that is not valid UTF-8.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Reason)
}

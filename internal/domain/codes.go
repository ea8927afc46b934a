package domain

// CodeInfo documents one entry of the stable error-code taxonomy.
type CodeInfo struct {
	Code        string `json:"code"`
	Level       string `json:"level"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// CodeCatalog returns the full error-code taxonomy. Codes are a stable
// contract: existing codes never change meaning, new codes may be added.
func CodeCatalog() []CodeInfo {
	return []CodeInfo{
		{"E101", LevelSyntax, SeverityError, "Syntax error in source"},
		{"E102", LevelSyntax, SeverityError, "Source is not valid UTF-8"},
		{"E103", LevelSyntax, SeverityError, "Source is empty or whitespace-only"},
		{"E201", LevelStatic, SeverityError, "Forbidden import or dangerous call"},
		{"E202", LevelStatic, SeverityError, "Blocking call that stalls the event loop"},
		{"D003", LevelStructure, SeverityWarning, "Widget yielded without a stable id"},
		{"DOM000", LevelStructure, SeverityWarning, "Structural analysis skipped: no Textual app class found"},
		{"DOM001", LevelStructure, SeverityWarning, "Structural analysis limited on this platform"},
		{"S000", LevelSandbox, SeverityWarning, "Sandbox skipped: platform lacks isolation support"},
		{"S001", LevelSandbox, SeverityError, "Sandboxed execution timed out"},
		{"S002", LevelSandbox, SeverityError, "Sandboxed execution exited non-zero"},
		{"S003", LevelSandbox, SeverityError, "Sandboxed execution hit a security restriction"},
	}
}

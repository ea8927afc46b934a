// Package analysis implements the static (L2) and structural (L3)
// validation layers. Both are pure functions over a parsed syntax.File;
// the pipeline orchestrator decides when each runs.
package analysis

import (
	"fmt"
	"strings"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/syntax"
)

// baseForbiddenImports are modules an agent-generated TUI app must never
// import. The set can be extended via project config.
var baseForbiddenImports = map[string]bool{
	"os":         true,
	"subprocess": true,
	"socket":     true,
	"eval":       true,
	"exec":       true,
	"builtins":   true,
}

var blockingHTTPCalls = map[string]bool{
	"requests.get":     true,
	"requests.post":    true,
	"requests.request": true,
}

// AnalyzeStatic walks the parsed file once and reports every policy
// violation: forbidden imports, dangerous calls, and blocking patterns.
// All applicable rules fire; none are mutually exclusive. An empty return
// means the layer passed.
func AnalyzeStatic(file *syntax.File, extraForbidden []string) []domain.Finding {
	forbidden := make(map[string]bool, len(baseForbiddenImports)+len(extraForbidden))
	for m := range baseForbiddenImports {
		forbidden[m] = true
	}
	for _, m := range extraForbidden {
		forbidden[m] = true
	}

	var findings []domain.Finding

	seen := make(map[string]bool)
	for _, imp := range file.Imports {
		root := imp.Root()
		if !forbidden[root] || seen[root] {
			continue
		}
		seen[root] = true
		findings = append(findings, staticFinding(
			"E201",
			fmt.Sprintf("Forbidden import '%s' detected. This could be unsafe.", root),
			nil,
			fmt.Sprintf("Remove the '%s' import. Use Textual APIs instead.", root),
		))
	}

	for _, call := range file.Calls {
		switch {
		case call.Target == "eval" || call.Target == "exec":
			findings = append(findings, staticFinding(
				"E201",
				fmt.Sprintf("Dangerous %s() call detected.", call.Target),
				domain.IntPtr(call.Pos.Line),
				fmt.Sprintf("Remove %s() call on line %d", call.Target, call.Pos.Line),
			))
		case call.Target == "__import__":
			findings = append(findings, staticFinding(
				"E201",
				"Dynamic import via __import__ detected.",
				domain.IntPtr(call.Pos.Line),
				fmt.Sprintf("Replace __import__() with static import on line %d", call.Pos.Line),
			))
		case call.Target == "time.sleep":
			findings = append(findings, staticFinding(
				"E202",
				fmt.Sprintf("Blocking call '%s' found. This blocks the event loop.", call.Target),
				domain.IntPtr(call.Pos.Line),
				fmt.Sprintf("Replace time.sleep() with asyncio.sleep() on line %d", call.Pos.Line),
			))
		case blockingHTTPCalls[call.Target]:
			findings = append(findings, staticFinding(
				"E202",
				fmt.Sprintf("Blocking HTTP call '%s' found in async context.", call.Target),
				domain.IntPtr(call.Pos.Line),
				fmt.Sprintf("Replace requests with httpx or aiohttp on line %d", call.Pos.Line),
			))
		}
	}

	for _, attr := range file.Attributes {
		if attr.Object == "os" && (attr.Attr == "system" || attr.Attr == "popen" || strings.HasPrefix(attr.Attr, "spawn")) {
			findings = append(findings, staticFinding(
				"E201",
				fmt.Sprintf("Dangerous os.%s() call detected.", attr.Attr),
				domain.IntPtr(attr.Pos.Line),
				fmt.Sprintf("Remove os.%s() call on line %d", attr.Attr, attr.Pos.Line),
			))
		}
	}

	// A time.sleep inside an async def gets a second, function-scoped
	// finding on top of the general one above.
	for _, call := range file.Calls {
		if call.Target == "time.sleep" && call.EnclosingAsync {
			findings = append(findings, staticFinding(
				"E202",
				fmt.Sprintf("time.sleep() found in function '%s'. This blocks the event loop.", call.EnclosingFunc),
				domain.IntPtr(call.Pos.Line),
				fmt.Sprintf("Replace time.sleep() with await asyncio.sleep() in function '%s' on line %d", call.EnclosingFunc, call.Pos.Line),
			))
		}
	}

	return findings
}

func staticFinding(code, message string, line *int, remediation string) domain.Finding {
	return domain.Finding{
		Level:       domain.LevelStatic,
		Code:        code,
		Message:     message,
		Line:        line,
		Severity:    domain.SeverityError,
		Remediation: remediation,
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/config"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/oracle"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/parser"
	"github.com/hbuddenberg/tuxido/internal/adapters/outbound/sandbox"
	"github.com/hbuddenberg/tuxido/internal/application"
	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/generate"
)

// registerTools registers all Tuxido MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath, version string) {
	// 1. validate_tui
	s.AddTool(
		mcplib.NewTool("validate_tui",
			mcplib.WithDescription("Validate a Textual TUI application for syntax errors, forbidden imports, and async patterns. Use this tool after generating Python code to check for common issues."),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Python source code of the Textual app"),
			),
			mcplib.WithString("depth", mcplib.Description("Validation depth: fast (syntax + static) or full (adds structural + sandbox). Default: fast")),
			mcplib.WithNumber("timeout", mcplib.Description("Sandbox timeout in seconds for full depth")),
		),
		handleValidate(projectPath, version),
	)

	// 2. heal_tui
	s.AddTool(
		mcplib.NewTool("heal_tui",
			mcplib.WithDescription("Validate a Textual app and self-heal the issues the rule catalog can fix. Returns healed source plus before/after validation results."),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Python source code of the Textual app"),
			),
			mcplib.WithNumber("max_iterations", mcplib.Description("Healing iteration budget (default from project config)")),
		),
		handleHeal(projectPath, version),
	)

	// 3. generate_tui
	s.AddTool(
		mcplib.NewTool("generate_tui",
			mcplib.WithDescription("Generate a runnable Textual application from an ASCII layout mockup (boxes, [Buttons], input fields)"),
			mcplib.WithString("layout",
				mcplib.Required(),
				mcplib.Description("ASCII layout text"),
			),
			mcplib.WithString("app_name", mcplib.Description("Class name for the generated app (default: GeneratedApp)")),
		),
		handleGenerate(),
	)

	// 4. get_framework_info
	s.AddTool(
		mcplib.NewTool("get_framework_info",
			mcplib.WithDescription("Returns runtime and Textual framework information plus the recognized widget catalog"),
		),
		handleFrameworkInfo(version),
	)
}

// newValidator builds the pipeline service from project config and a
// freshly discovered runtime context.
func newValidator(projectPath, version string) (*application.ValidateService, domain.ProjectConfig, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	rc := oracle.New().Discover(version)
	return application.NewValidateService(parser.New(), sandbox.New(), rc, cfg.ForbiddenImports), cfg, nil
}

func handleValidate(projectPath, version string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		depth, _ := request.GetArguments()["depth"].(string)
		if depth == "" {
			depth = domain.DepthFast
		}
		timeoutSecs, _ := request.GetArguments()["timeout"].(float64)
		timeout := time.Duration(timeoutSecs) * time.Second

		svc, cfg, err := newValidator(projectPath, version)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if timeout == 0 {
			timeout = time.Duration(cfg.SandboxTimeoutSeconds) * time.Second
		}

		result, err := svc.Validate(ctx, code, "app.py", depth, timeout)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleHeal(projectPath, version string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		validator, cfg, err := newValidator(projectPath, version)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		maxFloat, _ := request.GetArguments()["max_iterations"].(float64)
		maxIterations := int(maxFloat)
		if maxIterations == 0 {
			maxIterations = cfg.MaxHealIterations
		}

		outcome, err := application.NewHealService(validator).Heal(ctx, code, "app.py", maxIterations)
		if err != nil {
			return errorResult(fmt.Sprintf("healing failed: %v", err)), nil
		}
		return jsonResult(outcome)
	}
}

func handleGenerate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		layout, err := request.RequireString("layout")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		appName, _ := request.GetArguments()["app_name"].(string)
		if appName == "" {
			appName = "GeneratedApp"
		}

		return textResult(generate.FromASCII(layout, appName)), nil
	}
}

func handleFrameworkInfo(version string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rc := oracle.New().Discover(version)
		return jsonResult(application.BuildFrameworkInfo(rc))
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

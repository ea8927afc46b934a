package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hbuddenberg/tuxido/internal/domain"
	"github.com/hbuddenberg/tuxido/internal/domain/analysis"
)

// registerResources registers all Tuxido MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. tuxido://codes - the stable error-code taxonomy
	s.AddResource(
		mcplib.NewResource(
			"tuxido://codes",
			"Error Codes",
			mcplib.WithResourceDescription("The stable error-code taxonomy emitted by the validation pipeline"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCodesResource(),
	)

	// 2. tuxido://widgets - recognized widget catalog
	s.AddResource(
		mcplib.NewResource(
			"tuxido://widgets",
			"Widget Catalog",
			mcplib.WithResourceDescription("Textual widget classes the structural layer recognizes"),
			mcplib.WithMIMEType("application/json"),
		),
		handleWidgetsResource(),
	)
}

func handleCodesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResourceContents(request.Params.URI, domain.CodeCatalog())
	}
}

func handleWidgetsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResourceContents(request.Params.URI, analysis.WidgetCatalog())
	}
}

func jsonResourceContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

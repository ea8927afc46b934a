package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTuxidoMCPServer creates a new MCP server with all Tuxido tools and
// resources registered. The projectPath is the directory whose config
// and history the tools operate against.
func NewTuxidoMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tuxido",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, version)
	registerResources(s)

	return s
}

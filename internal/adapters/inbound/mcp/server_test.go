package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/hbuddenberg/tuxido/internal/adapters/inbound/mcp"
)

func TestNewTuxidoMCPServer(t *testing.T) {
	s := mcpadapter.NewTuxidoMCPServer(".", "test")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewTuxidoMCPServer(".", "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"validate_tui",
		"heal_tui",
		"generate_tui",
		"get_framework_info",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewReadabilityMCPServer creates an MCP server with the readability tools
// and resources registered. projectPath is the root directory of the
// project to analyze.
func NewReadabilityMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"test-readability",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}

package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const scoreURI = "readability://score"

// registerResources registers all readability MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			scoreURI,
			"Readability Score",
			mcplib.WithResourceDescription("Current test readability report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleScoreResource(projectPath),
	)
}

func handleScoreResource(projectPath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := newService()
		cfg, err := svc.LoadConfig(projectPath)
		if err != nil {
			return nil, err
		}
		result, err := svc.AnalyzeWithConfig(ctx, projectPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		data, err := renderJSON(result, projectPath, cfg.EffectiveThreshold())
		if err != nil {
			return nil, err
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      scoreURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

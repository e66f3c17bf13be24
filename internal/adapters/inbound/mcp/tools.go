package mcp

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/readability/internal/adapters/outbound/config"
	"github.com/openkraft/readability/internal/adapters/outbound/parser"
	"github.com/openkraft/readability/internal/adapters/outbound/report"
	"github.com/openkraft/readability/internal/adapters/outbound/scanner"
	"github.com/openkraft/readability/internal/application"
	"github.com/openkraft/readability/internal/domain"
)

// registerTools registers all readability MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("readability_score",
			mcplib.WithDescription("Analyze every Playwright test file of the project and return the readability report as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Directory to analyze, relative to the project root (default: the project root)"),
			),
		),
		handleScore(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("readability_analyze_file",
			mcplib.WithDescription("Score the tests of a single file and return per-test scores and suggestions as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the test file, relative to the project root"),
			),
		),
		handleAnalyzeFile(projectPath),
	)
}

func newService() *application.AnalyzeService {
	return application.NewAnalyzeService(scanner.New(), parser.New(), config.New(), nil)
}

func handleScore(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root, err := resolve(projectPath, request.GetString("path", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService()
		cfg, err := svc.LoadConfig(root)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		result, err := svc.AnalyzeWithConfig(ctx, root, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		return reportResult(result, root, cfg.EffectiveThreshold())
	}
}

func handleAnalyzeFile(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService()
		cfg, err := svc.LoadConfig(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path, err := resolve(projectPath, file)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rec, err := svc.AnalyzeFile(ctx, path)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		result := domain.NewProjectResult([]domain.FileRecord{rec})
		return reportResult(result, projectPath, cfg.EffectiveThreshold())
	}
}

// resolve joins rel onto the project root. Absolute paths are accepted when
// they point inside the root; anything outside it is rejected.
func resolve(projectPath, rel string) (string, error) {
	if rel == "" {
		return projectPath, nil
	}
	target := rel
	if !filepath.IsAbs(target) {
		target = filepath.Join(projectPath, rel)
	}

	absRoot, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("resolving project path: %w", err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rel, err)
	}
	inside, err := filepath.Rel(absRoot, absTarget)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the project root", rel)
	}
	return target, nil
}

func renderJSON(result *domain.ProjectResult, baseDir string, threshold int) ([]byte, error) {
	var buf bytes.Buffer
	opts := domain.ReportOptions{
		Format:    domain.FormatJSON,
		BaseDir:   baseDir,
		Threshold: threshold,
	}
	if err := report.Render(&buf, result, opts, report.Meta{}); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

func reportResult(result *domain.ProjectResult, baseDir string, threshold int) (*mcplib.CallToolResult, error) {
	data, err := renderJSON(result, baseDir, threshold)
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
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

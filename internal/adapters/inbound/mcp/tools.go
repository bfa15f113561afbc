package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/analyzer"
	configAdapter "github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/config"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/scanner"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/syntax"
	"github.com/i230016arsaltemuri/lintgate/internal/application"
)

// registerTools registers all LintGate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. lintgate_validate
	s.AddTool(
		mcplib.NewTool("lintgate_validate",
			mcplib.WithDescription("Run the validation gate and return the full report as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated file paths to check (defaults to the configured file set)"),
			),
			mcplib.WithNumber("max_warnings",
				mcplib.Description("Override the configured warning threshold"),
			),
		),
		handleValidate(projectPath),
	)

	// 2. lintgate_check_file
	s.AddTool(
		mcplib.NewTool("lintgate_check_file",
			mcplib.WithDescription("Syntax-check a single file without running the analyzer"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Relative path to the file to check"),
			),
		),
		handleCheckFile(projectPath),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		files := cfg.Files
		if raw := request.GetString("files", ""); raw != "" {
			files = splitPaths(raw)
		}
		if len(files) == 0 {
			files, err = scanner.New().Scan(projectPath, cfg.ExcludePaths...)
			if err != nil {
				return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
			}
		}

		threshold := cfg.WarningThreshold
		if v := request.GetFloat("max_warnings", -1); v >= 0 {
			threshold = int(v)
		}

		svc := application.NewGateService(syntax.New(), analyzer.New(cfg.Analyzer))
		report, err := svc.Run(projectPath, files, threshold)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		return jsonResult(report)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewGateService(syntax.New(), analyzer.Disabled{})
		report, err := svc.Run(projectPath, []string{file}, 0)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}

		return jsonResult(report.Results[0])
	}
}

func splitPaths(raw string) []string {
	var result []string
	for _, p := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
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

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/config"
	"github.com/i230016arsaltemuri/lintgate/internal/adapters/outbound/history"
)

// registerResources registers all LintGate MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. lintgate://config - effective gate configuration
	s.AddResource(
		mcplib.NewResource(
			"lintgate://config",
			"Gate Configuration",
			mcplib.WithResourceDescription("Effective gate configuration for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. lintgate://history - past gate runs
	s.AddResource(
		mcplib.NewResource(
			"lintgate://history",
			"Run History",
			mcplib.WithResourceDescription("Recorded validation gate runs for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config failed: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "lintgate://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history failed: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "lintgate://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

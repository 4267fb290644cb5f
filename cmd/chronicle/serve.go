// Package main provides the entry point for the chronicle CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	chroniclemcp "github.com/NishaKashyap1901/commitChronicle/internal/mcp"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run chronicle as a Model Context Protocol (MCP) server over stdio.

This exposes the timeline as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "chronicle": {
        "command": "chronicle",
        "args": ["serve"]
      }
    }
  }

Available tools: timeline_add, timeline_query, timeline_metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend := newBackend()
			server := chroniclemcp.NewServer(
				buildVersion(),
				timeline.NewStore(backend),
				auth.NewService(backend),
			)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

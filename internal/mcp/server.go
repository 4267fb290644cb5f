// Package mcp provides a Model Context Protocol server for chronicle.
// It exposes timeline operations as MCP tools that any MCP-capable agent
// can use on behalf of the logged-in user.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// NewServer creates an MCP server with all chronicle tools registered.
// Every tool resolves the active user at call time, so a login/logout
// between calls is picked up without restarting the server.
func NewServer(version string, store *timeline.Store, authSvc *auth.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chronicle",
		Version: version,
	}, nil)
	registerTools(server, store, authSvc)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all chronicle tools to the server.
func registerTools(server *mcp.Server, store *timeline.Store, authSvc *auth.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "timeline_add",
		Description: "Record a timeline event for the logged-in user. Requires a category, a title (5-150 characters), and optionally details, a date (Jan 02, 2006 format, defaults to today), and a related http(s) link.",
		Annotations: writeAnnotations(),
	}, handleAdd(store, authSvc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timeline_query",
		Description: "Read a page of the logged-in user's timeline, newest first. Pages hold 5 events; the page number is clamped to the valid range.",
		Annotations: readOnlyAnnotations(),
	}, handleQuery(store, authSvc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timeline_metrics",
		Description: "Summarize the logged-in user's timeline: commit, completed-task, blocker, and milestone counts plus a per-day activity series.",
		Annotations: readOnlyAnnotations(),
	}, handleMetrics(store, authSvc))
}

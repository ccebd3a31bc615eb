// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitpulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: analyze_activity ---
	s.AddTool(mcp.NewTool("analyze_activity",
		mcp.WithDescription("Analyze Git repositories and return weekly per-contributor commit and line-churn statistics."),
		mcp.WithString("paths", mcp.Description("Comma-separated repository paths or glob patterns."), mcp.Required()),
		mcp.WithString("since", mcp.Description("History cutoff: ISO8601 date or 'N units ago'. Commits before it are excluded.")),
	), h.handleAnalyzeActivity)

	// --- 2. Tool: top_contributors ---
	s.AddTool(mcp.NewTool("top_contributors",
		mcp.WithDescription("Rank contributors by total commit count across the given repositories."),
		mcp.WithString("paths", mcp.Description("Comma-separated repository paths or glob patterns."), mcp.Required()),
		mcp.WithString("since", mcp.Description("History cutoff: ISO8601 date or 'N units ago'.")),
		mcp.WithNumber("limit", mcp.Description("Number of contributors to return.")),
	), h.handleTopContributors)

	return s
}

// StartMCPServer starts the gitpulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}

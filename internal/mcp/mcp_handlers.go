package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/core/agg"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// configForRequest derives a per-call Config from the shared base config and
// the tool arguments.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	paths := request.GetString("paths", "")
	cfg.RepoSpecs = cfg.RepoSpecs[:0]
	for _, p := range strings.Split(paths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.RepoSpecs = append(cfg.RepoSpecs, p)
		}
	}
	if len(cfg.RepoSpecs) == 0 {
		return nil, fmt.Errorf("at least one repository path is required")
	}

	if s := request.GetString("since", ""); s != "" {
		t, err := contract.ParseSinceTime(s, time.Now())
		if err != nil {
			return nil, fmt.Errorf("invalid since value %q: %w", s, err)
		}
		cfg.Since = t
		cfg.SinceRaw = s
	}

	return cfg, nil
}

func (h *toolHandler) handleAnalyzeActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result := core.RunAnalysis(ctx, cfg, contract.NewLocalGitClient())
	if len(result.Repositories) == 0 {
		return mcp.NewToolResultError("no valid Git repositories to analyze"), nil
	}

	payload := struct {
		Repositories []string                       `json:"repositories"`
		Totals       schema.Totals                  `json:"totals"`
		Stats        []schema.WeeklyContributorStat `json:"stats"`
	}{
		Repositories: result.Repositories,
		Totals:       result.Totals,
		Stats:        result.Stats,
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTopContributors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.TopLimit = l
	}

	result := core.RunAnalysis(ctx, cfg, contract.NewLocalGitClient())
	if len(result.Repositories) == 0 {
		return mcp.NewToolResultError("no valid Git repositories to analyze"), nil
	}

	top := agg.TopContributors(result.Stats, cfg.TopLimit)
	jsonData, _ := json.MarshalIndent(top, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

package cmd

import (
	"github.com/gitpulse/gitpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitpulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to run activity analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// Repository paths arrive per tool call, so setup runs without
		// positional arguments here.
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

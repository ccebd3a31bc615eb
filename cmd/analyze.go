package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd performs multi-repository activity analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path-specs...]",
	Short: "Fold commit history into weekly per-contributor statistics.",
	Long: `Scan one or more Git repositories and aggregate their commit history
into weekly activity cells, one per (week, contributor) pair.

Each path spec is either a literal directory path or a glob pattern.
Matched directories that are not Git repositories are skipped with a
warning; the analysis continues with the remaining repositories.

Examples:
  # Summarize a single repository
  gitpulse analyze ~/code/myproject

  # Analyze every repository under a workspace
  gitpulse analyze '~/code/*'

  # Restrict history to the last quarter and export to CSV
  gitpulse analyze --since "3 months ago" --csv activity.csv ~/code/myproject

  # Produce all export forms at once
  gitpulse analyze --json out.json --csv out.csv --parquet out.parquet .`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run activity analysis", err)
		}
	},
}

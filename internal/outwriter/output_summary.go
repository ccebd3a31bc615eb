package outwriter

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gitpulse/gitpulse/core/agg"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummary writes the human-readable analysis summary to stdout: run
// totals, the top contributors ranked by commit count, and the chronological
// weekly breakdown.
func PrintSummary(result *schema.AnalysisResult, cfg *contract.Config) error {
	if err := printSummaryTotals(result, cfg); err != nil {
		return err
	}
	if len(result.Stats) == 0 {
		_, err := fmt.Println("\nNo commits found.")
		return err
	}
	if err := printTopContributorsTable(result.Stats, cfg); err != nil {
		return fmt.Errorf("error writing contributor table: %w", err)
	}
	if err := printWeeklyBreakdownTable(result.Stats, cfg); err != nil {
		return fmt.Errorf("error writing weekly table: %w", err)
	}
	return nil
}

// printSummaryTotals prints the header block with run-wide totals.
func printSummaryTotals(result *schema.AnalysisResult, cfg *contract.Config) error {
	if _, err := fmt.Println(contract.FormatHeader("Git Activity Summary", cfg.UseColors)); err != nil {
		return err
	}
	fmt.Printf("Repositories analyzed: %d\n", len(result.Repositories))
	if len(result.SkippedRepos) > 0 {
		fmt.Printf("Repositories skipped: %d\n", len(result.SkippedRepos))
	}
	if !result.Since.IsZero() {
		fmt.Printf("Since: %s\n", result.Since.Format(contract.DateTimeFormat))
	}

	totals := result.Totals
	lines := fmt.Sprintf("Total commits: %d\nTotal lines added: %d\nTotal lines deleted: %d\nNet lines changed: %d",
		totals.Commits, totals.LinesAdded, totals.LinesDeleted, totals.NetLines())
	_, err := fmt.Println(contract.FormatTotal(lines, cfg.UseColors))
	return err
}

// printTopContributorsTable prints contributors ranked by commit count.
func printTopContributorsTable(stats []schema.WeeklyContributorStat, cfg *contract.Config) error {
	top := agg.TopContributors(stats, cfg.TopLimit)

	if _, err := fmt.Printf("\n%s\n", contract.FormatHeader(fmt.Sprintf("Top %d Contributors", len(top)), cfg.UseColors)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Contributor", "Commits", "Lines Added", "Lines Deleted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth()
	var data [][]string
	for i, ct := range top {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(ct.Contributor, nameWidth),
			strconv.Itoa(ct.Commits),
			strconv.Itoa(ct.LinesAdded),
			strconv.Itoa(ct.LinesDeleted),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printWeeklyBreakdownTable prints per-week totals in chronological order.
func printWeeklyBreakdownTable(stats []schema.WeeklyContributorStat, cfg *contract.Config) error {
	weeks := agg.WeeklyTotals(stats)

	if _, err := fmt.Printf("\n%s\n", contract.FormatHeader("Weekly Activity", cfg.UseColors)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Week Start", "Commits", "Lines Added", "Lines Deleted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, wt := range weeks {
		row := []string{
			wt.WeekStart,
			strconv.Itoa(wt.Commits),
			strconv.Itoa(wt.LinesAdded),
			strconv.Itoa(wt.LinesDeleted),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

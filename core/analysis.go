package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gitpulse/gitpulse/core/agg"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/internal/runstore"
	"github.com/gitpulse/gitpulse/schema"
)

// Result is the outcome of one analysis run plus its export surface.
// Consumers like the MCP server read the embedded AnalysisResult and perform
// no aggregation of their own.
type Result struct {
	schema.AnalysisResult

	cfg *contract.Config
}

// WriteJSON writes the structured-record form to path ("" means stdout).
func (r *Result) WriteJSON(path string) error {
	return outwriter.WriteJSONStats(r.Stats, path)
}

// WriteCSV writes the tabular form to path ("" means stdout).
func (r *Result) WriteCSV(path string) error {
	return outwriter.WriteCSVStats(r.Stats, path)
}

// WriteParquet writes the columnar form to path.
func (r *Result) WriteParquet(path string) error {
	return outwriter.WriteParquetStats(r.Stats, path)
}

// PrintSummary writes the human-readable summary to stdout.
func (r *Result) PrintSummary() error {
	return outwriter.PrintSummary(&r.AnalysisResult, r.cfg)
}

// repoScan is the outcome of extracting one repository's history.
type repoScan struct {
	repoPath string
	records  []schema.CommitRecord
	err      error
}

// RunAnalysis resolves the configured path specifications, extracts commit
// history from every valid repository, and folds everything into one weekly
// aggregation table. A failing repository only shrinks coverage; it is
// reported as a warning and the run continues.
func RunAnalysis(ctx context.Context, cfg *contract.Config, client contract.GitClient) *Result {
	startTime := time.Now()

	repos, warnings := ResolveRepositories(cfg.RepoSpecs)
	for _, w := range warnings {
		contract.LogWarn("Discovery", errors.New(w))
	}

	scans := scanRepositories(ctx, cfg, client, repos)

	table := agg.NewTable()
	var commitCount int
	var analyzed, skipped []string
	for _, s := range scans {
		if s.err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping repository %s", s.repoPath), s.err)
			skipped = append(skipped, s.repoPath)
			continue
		}
		table.Fold(s.records...)
		commitCount += len(s.records)
		analyzed = append(analyzed, s.repoPath)
	}

	stats := table.Stats()
	result := &Result{
		AnalysisResult: schema.AnalysisResult{
			Repositories: analyzed,
			SkippedRepos: skipped,
			Since:        cfg.Since,
			Stats:        stats,
			Totals:       agg.Totals(stats),
			CommitCount:  commitCount,
		},
		cfg: cfg,
	}

	recordRun(cfg, startTime, result)

	return result
}

// scanRepositories extracts commit history with a bounded worker pool, one
// task per repository. Each worker writes only its own result slots, so no
// locking is needed; folding happens after the pool drains.
func scanRepositories(ctx context.Context, cfg *contract.Config, client contract.GitClient, repos []string) []repoScan {
	scans := make([]repoScan, len(repos))
	repoCh := make(chan int, len(repos))

	var wg sync.WaitGroup
	workers := min(cfg.Workers, max(len(repos), 1))
	for range workers {
		wg.Go(func() {
			for i := range repoCh {
				records, err := ExtractCommits(ctx, client, repos[i], cfg.Since)
				scans[i] = repoScan{repoPath: repos[i], records: records, err: err}
			}
		})
	}

	for i := range repos {
		repoCh <- i
	}
	close(repoCh)

	wg.Wait()
	return scans
}

// recordRun persists run metadata and the produced cells when tracking is
// enabled. Tracking failures degrade to warnings; they never fail the run.
func recordRun(cfg *contract.Config, startTime time.Time, result *Result) {
	store := runstore.Manager.GetRunStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"specs":   cfg.RepoSpecs,
		"since":   cfg.SinceRaw,
		"workers": cfg.Workers,
	}
	runID, err := store.BeginRun(startTime, params)
	if err != nil {
		contract.LogWarn("Run tracking begin failed", err)
		return
	}
	if runID == 0 {
		return // tracking disabled
	}

	if err := store.RecordWeeklyStats(runID, result.Stats); err != nil {
		contract.LogWarn("Run tracking failed to record weekly stats", err)
	}
	if err := store.EndRun(runID, time.Now(), len(result.Repositories), result.CommitCount); err != nil {
		contract.LogWarn("Run tracking failed to finalize run", err)
	}
}

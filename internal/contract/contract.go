// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// GitClient defines the Git operations needed by the analysis pipeline.
// This allows the extraction logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns the raw commit log with per-commit numstat output,
	// bounded below by since when it is non-zero.
	GetCommitLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error)
}

// RunStore defines the interface for tracking analysis runs and the weekly
// cells they produce.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID.
	// A zero ID with a nil error means tracking is disabled.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run row with completion data.
	EndRun(runID int64, endTime time.Time, repoCount, commitCount int) error

	// RecordWeeklyStats stores the aggregation cells produced by a run.
	RecordWeeklyStats(runID int64, stats []schema.WeeklyContributorStat) error

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns returns every persisted run, oldest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllWeeklyStats returns every persisted cell, oldest run first.
	GetAllWeeklyStats() ([]schema.WeeklyStatRecord, error)

	// Close closes the underlying connection.
	Close() error
}

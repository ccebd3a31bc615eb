// Package schema has models and shared constants for all parts of gitpulse.
package schema

import "time"

// ParseStatus classifies how completely a commit log entry was parsed.
type ParseStatus string

// All parse statuses for commit records.
const (
	// ParseFull means every field of the entry parsed cleanly.
	ParseFull ParseStatus = "full"

	// ParsePartial means one or more churn values could not be parsed
	// and were defaulted to zero.
	ParsePartial ParseStatus = "partial"
)

// CommitRecord is one parsed commit from a repository's history.
type CommitRecord struct {
	Author       string
	Timestamp    time.Time
	Hash         string
	LinesAdded   int
	LinesDeleted int
	Parse        ParseStatus
}

// StatKey uniquely identifies one aggregation cell.
//
// Week is the Monday of the commit's ISO week in 2006-01-02 form, so key
// equality and lexical ordering are value based.
type StatKey struct {
	Week        string
	Contributor string
}

// WeeklyContributorStat is one aggregation cell: the activity of one
// contributor within one ISO week, summed across all analyzed repositories.
type WeeklyContributorStat struct {
	WeekStart    string `json:"week_start"`
	Contributor  string `json:"contributor"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// Totals is activity summed across every cell of a run.
type Totals struct {
	Commits      int `json:"commits"`
	LinesAdded   int `json:"lines_added"`
	LinesDeleted int `json:"lines_deleted"`
}

// NetLines returns lines added minus lines deleted.
func (t Totals) NetLines() int {
	return t.LinesAdded - t.LinesDeleted
}

// ContributorTotal is activity for one contributor summed across all weeks.
type ContributorTotal struct {
	Contributor  string `json:"contributor"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// WeekTotal is activity for one ISO week summed across all contributors.
type WeekTotal struct {
	WeekStart    string `json:"week_start"`
	Commits      int    `json:"commits"`
	LinesAdded   int    `json:"lines_added"`
	LinesDeleted int    `json:"lines_deleted"`
}

// AnalysisResult is the outcome of one analysis run. It is owned by that run
// and never persisted; the run store receives a copy only when enabled.
type AnalysisResult struct {
	// Repositories are the resolved repository roots that were analyzed.
	Repositories []string

	// SkippedRepos are resolved roots whose extraction failed.
	SkippedRepos []string

	// Since is the history cutoff; zero means unbounded.
	Since time.Time

	// Stats holds every aggregation cell, ordered by week start ascending
	// then contributor ascending.
	Stats []WeeklyContributorStat

	// Totals sums all cells.
	Totals Totals

	// CommitCount is the number of commit records folded into the table.
	CommitCount int
}

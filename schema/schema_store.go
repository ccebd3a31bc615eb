package schema

import "time"

// RunStatus summarizes the state of the run tracking store.
type RunStatus struct {
	Backend        string
	Connected      bool
	TotalRuns      int64
	TotalCells     int64
	TotalCommits   int64
	LastRunTime    time.Time
	OldestRunTime  time.Time
	TableSizeBytes int64
}

// RunRecord is one persisted analysis run.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int64
	RepoCount     int32
	CommitCount   int32
	ConfigParams  *string
}

// WeeklyStatRecord is one persisted aggregation cell tied to a run.
type WeeklyStatRecord struct {
	RunID        int64
	WeekStart    string
	Contributor  string
	Commits      int32
	LinesAdded   int32
	LinesDeleted int32
}

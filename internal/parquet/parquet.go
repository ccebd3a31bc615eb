// Package parquet provides data structures and functions for exporting
// gitpulse activity data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// WeeklyStat is one aggregation cell in its columnar form.
type WeeklyStat struct {
	// WeekStart is the Monday of the ISO week as a calendar date string
	WeekStart string `parquet:"week_start,snappy"`

	// Contributor is the raw author name as reported by the repository
	Contributor string `parquet:"contributor,snappy"`

	// Commits is the number of commits in this cell
	Commits int32 `parquet:"commits,snappy"`

	// LinesAdded is the number of lines added in this cell
	LinesAdded int32 `parquet:"lines_added,snappy"`

	// LinesDeleted is the number of lines deleted in this cell
	LinesDeleted int32 `parquet:"lines_deleted,snappy"`
}

// Run represents a single analysis run with metadata.
// This struct maps to the gitpulse_runs database table.
type Run struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// RepoCount is the number of repositories analyzed in this run
	RepoCount int32 `parquet:"repo_count,snappy"`

	// CommitCount is the number of commit records folded in this run
	CommitCount int32 `parquet:"commit_count,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunWeeklyStat is one persisted aggregation cell tied to a run.
// This struct maps to the gitpulse_weekly_stats database table.
type RunWeeklyStat struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	WeekStart    string `parquet:"week_start,snappy"`
	Contributor  string `parquet:"contributor,snappy"`
	Commits      int32  `parquet:"commits,snappy"`
	LinesAdded   int32  `parquet:"lines_added,snappy"`
	LinesDeleted int32  `parquet:"lines_deleted,snappy"`
}

// writeParquetFile writes rows to a Parquet file using struct schema inference.
func writeParquetFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the row struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteWeeklyStatsParquet writes a slice of WeeklyStat rows to a Parquet file.
func WriteWeeklyStatsParquet(data []WeeklyStat, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// WriteRunsParquet writes a slice of Run rows to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// WriteRunWeeklyStatsParquet writes a slice of RunWeeklyStat rows to a Parquet file.
func WriteRunWeeklyStatsParquet(data []RunWeeklyStat, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// MockFetchRuns generates sample Run data for demonstration.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 58*time.Minute)
	durationMs1 := endTime1.Sub(startTime1).Milliseconds()
	configParams1 := `{"specs":["~/work/*"],"since":"6 months ago","workers":4}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-24*time.Hour + 30*time.Second)
	durationMs2 := endTime2.Sub(startTime2).Milliseconds()
	configParams2 := `{"specs":["."],"workers":8}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []Run{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			RepoCount:     12,
			CommitCount:   4800,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			RepoCount:     1,
			CommitCount:   320,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			RepoCount:     0,
			CommitCount:   0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchRunWeeklyStats generates sample RunWeeklyStat data for demonstration.
func MockFetchRunWeeklyStats() []RunWeeklyStat {
	return []RunWeeklyStat{
		{RunID: 1, WeekStart: "2024-01-01", Contributor: "alice@example.com", Commits: 14, LinesAdded: 820, LinesDeleted: 310},
		{RunID: 1, WeekStart: "2024-01-01", Contributor: "bob@example.com", Commits: 6, LinesAdded: 150, LinesDeleted: 40},
		{RunID: 1, WeekStart: "2024-01-08", Contributor: "alice@example.com", Commits: 9, LinesAdded: 400, LinesDeleted: 95},
		{RunID: 2, WeekStart: "2024-01-08", Contributor: "carol@example.com", Commits: 21, LinesAdded: 1200, LinesDeleted: 640},
	}
}

// ConvertWeeklyStats converts schema.WeeklyContributorStat to WeeklyStat for Parquet export.
func ConvertWeeklyStats(stats []schema.WeeklyContributorStat) []WeeklyStat {
	result := make([]WeeklyStat, len(stats))
	for i, s := range stats {
		result[i] = WeeklyStat{
			WeekStart:    s.WeekStart,
			Contributor:  s.Contributor,
			Commits:      int32(s.Commits),
			LinesAdded:   int32(s.LinesAdded),
			LinesDeleted: int32(s.LinesDeleted),
		}
	}
	return result
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			RepoCount:     record.RepoCount,
			CommitCount:   record.CommitCount,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertWeeklyStatRecords converts schema.WeeklyStatRecord to RunWeeklyStat for Parquet export.
func ConvertWeeklyStatRecords(records []schema.WeeklyStatRecord) []RunWeeklyStat {
	result := make([]RunWeeklyStat, len(records))
	for i, record := range records {
		result[i] = RunWeeklyStat{
			RunID:        record.RunID,
			WeekStart:    record.WeekStart,
			Contributor:  record.Contributor,
			Commits:      record.Commits,
			LinesAdded:   record.LinesAdded,
			LinesDeleted: record.LinesDeleted,
		}
	}
	return result
}

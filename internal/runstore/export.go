package runstore

import (
	"errors"
	"fmt"

	"github.com/gitpulse/gitpulse/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run history to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total weekly stat rows: %d\n", status.TotalCells)

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all weekly stats
	weeklyStats, err := store.GetAllWeeklyStats()
	if err != nil {
		return fmt.Errorf("failed to retrieve weekly stats: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetWeeklyStats := parquet.ConvertWeeklyStatRecords(weeklyStats)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write weekly stats to Parquet
	weeklyStatsFile := outputFile + ".weekly_stats.parquet"
	if err := parquet.WriteRunWeeklyStatsParquet(parquetWeeklyStats, weeklyStatsFile); err != nil {
		return fmt.Errorf("failed to write weekly stats: %w", err)
	}
	fmt.Printf("Exported %d weekly stat rows to: %s\n", len(parquetWeeklyStats), weeklyStatsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

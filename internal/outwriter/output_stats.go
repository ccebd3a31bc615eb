package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gitpulse/gitpulse/internal/parquet"
	"github.com/gitpulse/gitpulse/schema"
)

// WriteJSONStats writes the aggregation cells as an indented JSON array of
// structured records. An empty path writes to stdout.
func WriteJSONStats(stats []schema.WeeklyContributorStat, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		if stats == nil {
			stats = []schema.WeeklyContributorStat{} // Encode as [], not null
		}
		return writeJSON(w, stats)
	}, "Wrote JSON weekly stats")
}

// WriteCSVStats writes the aggregation cells as a CSV table with a fixed
// header row. An empty path writes to stdout.
func WriteCSVStats(stats []schema.WeeklyContributorStat, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, schema.CSVHeader, func(csvWriter *csv.Writer) error {
			for _, s := range stats {
				row := []string{
					s.WeekStart,
					s.Contributor,
					strconv.Itoa(s.Commits),
					strconv.Itoa(s.LinesAdded),
					strconv.Itoa(s.LinesDeleted),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV weekly stats")
}

// WriteParquetStats writes the aggregation cells as a Parquet file with rows
// in the same deterministic order as the JSON and CSV forms.
func WriteParquetStats(stats []schema.WeeklyContributorStat, outputFile string) error {
	return parquet.WriteWeeklyStatsParquet(parquet.ConvertWeeklyStats(stats), outputFile)
}

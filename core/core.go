package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/gitpulse/gitpulse/internal/contract"
)

// ExecuteAnalyze runs the full pipeline and renders every requested output
// form. Export failures are independent: one failing form does not stop the
// others, and all failures are joined into the returned error.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	result := RunAnalysis(ctx, cfg, client)

	if len(result.Repositories) == 0 && cfg.WantsOutput() {
		return errors.New("no valid Git repositories to analyze")
	}

	var exportErrs []error
	if cfg.JSONPath != "" {
		if err := result.WriteJSON(cfg.JSONPath); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("JSON export: %w", err))
		}
	}
	if cfg.CSVPath != "" {
		if err := result.WriteCSV(cfg.CSVPath); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("CSV export: %w", err))
		}
	}
	if cfg.ParquetPath != "" {
		if err := result.WriteParquet(cfg.ParquetPath); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("Parquet export: %w", err))
		}
	}
	if cfg.Summary {
		if err := result.PrintSummary(); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("summary: %w", err))
		}
	}

	return errors.Join(exportErrs...)
}

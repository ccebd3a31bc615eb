// Package main provides a performance benchmarking tool for the gitpulse CLI.
// It measures analyze execution times across different repository sizes and
// worker counts, running each configuration multiple times and averaging the
// results, generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - gitpulse binary installed and available in PATH
// - Test repositories cloned to the specified base directory
// - Git repositories: csv-parser, fd, git, kubernetes
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the averaged timings of one repository/worker-count pair.
type BenchmarkResult struct {
	Repository  string
	Workers     int
	NoTrackTime string
	TrackTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase    string
	Timeout     time.Duration
	WorkerSets  []int
	RunsPerCase int
	TestRepos   []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	repoBase := os.Args[1]

	config := BenchmarkConfig{
		RepoBase:    repoBase,
		Timeout:     5 * time.Minute,
		WorkerSets:  []int{1, 4, 8},
		RunsPerCase: 3,
		TestRepos:   []string{"csv-parser", "fd", "git", "kubernetes"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear run history so tracking timings start from an empty store
	fmt.Printf("Clearing run history...\n")
	clearCmd := exec.Command("gitpulse", "runs", "clear", "--run-backend", "sqlite")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run history cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that gitpulse binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if gitpulse is available
	if _, err := exec.LookPath("gitpulse"); err != nil {
		return fmt.Errorf("gitpulse binary not found in PATH")
	}

	// Check if repositories exist
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark cases across configured repositories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, worker sets %v, %d runs per case\n",
		len(config.TestRepos), config.Timeout, config.WorkerSets, config.RunsPerCase)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)
		repoPath := filepath.Join(config.RepoBase, repo)

		for _, workers := range config.WorkerSets {
			results = append(results, runBenchmarkCase(config, repo, repoPath, workers))
		}
	}

	return results
}

// runBenchmarkCase measures one repository at one worker count, once with run
// tracking disabled and once with the SQLite backend.
func runBenchmarkCase(config BenchmarkConfig, repo, repoPath string, workers int) BenchmarkResult {
	fmt.Printf("Running analyze on %s with %d workers\n", repo, workers)

	runPhase := func(runBackend, phaseName string) string {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, config.RunsPerCase)
		times := runBenchmark(config, repoPath, workers, runBackend)
		if len(times) == 0 {
			return "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	noTrackAvg := runPhase("none", "No-tracking")
	trackAvg := runPhase("sqlite", "Tracking")

	fmt.Printf("  No-tracking average: %s, Tracking average: %s\n", noTrackAvg, trackAvg)

	return BenchmarkResult{
		Repository:  repo,
		Workers:     workers,
		NoTrackTime: noTrackAvg,
		TrackTime:   trackAvg,
	}
}

// runBenchmark executes gitpulse analyze multiple times and returns the
// elapsed seconds of each successful run.
func runBenchmark(config BenchmarkConfig, repoPath string, workers int, runBackend string) []float64 {
	args := []string{
		"analyze", repoPath,
		"--summary",
		"--color", "no",
		"--workers", fmt.Sprintf("%d", workers),
		"--run-backend", runBackend,
	}

	var times []float64
	for run := 1; run <= config.RunsPerCase; run++ {
		start := time.Now()

		cmd := exec.Command("gitpulse", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	return times
}

// isSuccess checks if command output indicates a completed summary
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Commits") &&
		!strings.Contains(outputStr, "Fatal")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/gitpulse_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"repo", "workers", "no_track_avg", "track_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Repository, fmt.Sprintf("%d", result.Workers), result.NoTrackTime, result.TrackTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, result := range results {
		fmt.Printf("  %-12s workers=%d: No-tracking: %s, Tracking: %s\n",
			result.Repository, result.Workers, result.NoTrackTime, result.TrackTime)
	}

	fmt.Printf("Benchmark script completed successfully\n")
}

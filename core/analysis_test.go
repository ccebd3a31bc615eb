package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunAnalysisMergesRepositories folds two repositories into one table
// and checks that cells merge across repository boundaries.
func TestRunAnalysisMergesRepositories(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	repoA := makeRepoDir(t, root, "alpha")
	repoB := makeRepoDir(t, root, "beta")

	logA := "'--a1|Alice|2024-01-01T10:00:00Z'\n10\t2\tmain.go\n"
	logB := "'--b1|Alice|2024-01-03T10:00:00Z'\n5\t1\tlib.go\n\n'--b2|Bob|2024-01-02T10:00:00Z'\n1\t0\tdoc.md\n"

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, repoA, time.Time{}).Return([]byte(logA), nil)
	mockClient.On("GetCommitLog", ctx, repoB, time.Time{}).Return([]byte(logB), nil)

	cfg := &contract.Config{
		RepoSpecs: []string{repoA, repoB},
		Workers:   2,
		TopLimit:  10,
	}

	result := RunAnalysis(ctx, cfg, mockClient)
	require.NotNil(t, result)
	mockClient.AssertExpectations(t)

	assert.Len(t, result.Repositories, 2)
	assert.Empty(t, result.SkippedRepos)
	assert.Equal(t, 3, result.CommitCount)

	// Alice's commits from both repositories land in the same week cell.
	require.Len(t, result.Stats, 2)
	assert.Equal(t, "2024-01-01", result.Stats[0].WeekStart)
	assert.Equal(t, "Alice", result.Stats[0].Contributor)
	assert.Equal(t, 2, result.Stats[0].Commits)
	assert.Equal(t, 15, result.Stats[0].LinesAdded)
	assert.Equal(t, 3, result.Stats[0].LinesDeleted)

	assert.Equal(t, "Bob", result.Stats[1].Contributor)
	assert.Equal(t, 1, result.Stats[1].Commits)

	assert.Equal(t, 3, result.Totals.Commits)
	assert.Equal(t, 16, result.Totals.LinesAdded)
	assert.Equal(t, 3, result.Totals.LinesDeleted)
}

// TestRunAnalysisIsolatesFailingRepo verifies a failing extraction shrinks
// coverage without failing the run.
func TestRunAnalysisIsolatesFailingRepo(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	good := makeRepoDir(t, root, "good")
	bad := makeRepoDir(t, root, "bad")

	log := "'--g1|Alice|2024-01-01T10:00:00Z'\n1\t1\tmain.go\n"

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, good, time.Time{}).Return([]byte(log), nil)
	mockClient.On("GetCommitLog", ctx, bad, time.Time{}).Return([]byte(nil), errors.New("corrupt object database"))

	cfg := &contract.Config{
		RepoSpecs: []string{good, bad},
		Workers:   1,
		TopLimit:  10,
	}

	result := RunAnalysis(ctx, cfg, mockClient)
	require.NotNil(t, result)

	assert.Equal(t, []string{good}, result.Repositories)
	assert.Equal(t, []string{bad}, result.SkippedRepos)
	assert.Equal(t, 1, result.CommitCount)
	assert.Len(t, result.Stats, 1)
}

// TestRunAnalysisNoValidRepos covers specs that resolve to nothing.
func TestRunAnalysisNoValidRepos(t *testing.T) {
	ctx := context.Background()

	mockClient := &contract.MockGitClient{}

	cfg := &contract.Config{
		RepoSpecs: []string{"/missing/one", "/missing/two"},
		Workers:   2,
		TopLimit:  10,
	}

	result := RunAnalysis(ctx, cfg, mockClient)
	require.NotNil(t, result)
	assert.Empty(t, result.Repositories)
	assert.Empty(t, result.Stats)
	assert.Equal(t, 0, result.Totals.Commits)
	mockClient.AssertExpectations(t)
}

// TestRunAnalysisPropagatesSince verifies the cutoff reaches the git client.
func TestRunAnalysisPropagatesSince(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	repo := makeRepoDir(t, root, "repo")

	since := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, repo, since).Return([]byte(""), nil)

	cfg := &contract.Config{
		RepoSpecs: []string{repo},
		Since:     since,
		Workers:   1,
		TopLimit:  10,
	}

	result := RunAnalysis(ctx, cfg, mockClient)
	mockClient.AssertExpectations(t)

	assert.Len(t, result.Repositories, 1)
	assert.Empty(t, result.Stats)
	assert.Equal(t, since, result.Since)
}

// TestScanRepositoriesWorkerBound verifies the pool never spawns more
// workers than repositories and preserves result slots.
func TestScanRepositoriesWorkerBound(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	repoA := makeRepoDir(t, root, "a")
	repoB := makeRepoDir(t, root, "b")

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, repoA, time.Time{}).Return([]byte(""), nil)
	mockClient.On("GetCommitLog", ctx, repoB, time.Time{}).Return([]byte(""), nil)

	cfg := &contract.Config{Workers: 16, TopLimit: 10}
	scans := scanRepositories(ctx, cfg, mockClient, []string{repoA, repoB})

	require.Len(t, scans, 2)
	assert.Equal(t, repoA, scans[0].repoPath)
	assert.Equal(t, repoB, scans[1].repoPath)
}

//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedGitpulsePath holds the path to a shared gitpulse binary built once for all tests.
	sharedGitpulsePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getGitpulseBinary returns the path to the gitpulse binary, building it once if needed.
func getGitpulseBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "gitpulse-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		gitpulsePath := filepath.Join(tempDir, "gitpulse")
		buildCmd := exec.Command("go", "build", "-o", gitpulsePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build gitpulse: %v", err))
		}

		sharedGitpulsePath = gitpulsePath
	})

	return sharedGitpulsePath
}

// initFixtureRepo creates a git repository with a known commit history and
// returns its path. Commits are authored by two distinct contributors.
func initFixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(env []string, args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(), env...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v failed: %s", args, out)
		}
	}

	alice := []string{
		"GIT_AUTHOR_NAME=Alice", "GIT_AUTHOR_EMAIL=alice@example.com",
		"GIT_COMMITTER_NAME=Alice", "GIT_COMMITTER_EMAIL=alice@example.com",
	}
	bob := []string{
		"GIT_AUTHOR_NAME=Bob", "GIT_AUTHOR_EMAIL=bob@example.com",
		"GIT_COMMITTER_NAME=Bob", "GIT_COMMITTER_EMAIL=bob@example.com",
	}

	run(nil, "init")
	writeFile(t, filepath.Join(dir, "a.txt"), "one\ntwo\n")
	run(alice, "add", "a.txt")
	run(alice, "commit", "-m", "add a")

	writeFile(t, filepath.Join(dir, "b.txt"), "three\n")
	run(bob, "add", "b.txt")
	run(bob, "commit", "-m", "add b")

	writeFile(t, filepath.Join(dir, "a.txt"), "one\ntwo\nthree\n")
	run(alice, "add", "a.txt")
	run(alice, "commit", "-m", "extend a")

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

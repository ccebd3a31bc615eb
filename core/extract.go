package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// ExtractCommits runs git log for one repository root and parses each entry
// into a CommitRecord. Malformed entries degrade instead of failing the scan:
// unparseable churn values default to zero and mark the record partial, while
// entries without a usable header are skipped with a warning. Only a failed
// git invocation returns an error.
func ExtractCommits(ctx context.Context, client contract.GitClient, repoPath string, since time.Time) ([]schema.CommitRecord, error) {
	out, err := client.GetCommitLog(ctx, repoPath, since)
	if err != nil {
		return nil, err
	}
	return parseCommitLog(repoPath, out), nil
}

// parseCommitLog walks git log --numstat output and produces one record per
// commit entry. Duplicate hashes within the same repository are dropped.
func parseCommitLog(repoPath string, out []byte) []schema.CommitRecord {
	var records []schema.CommitRecord
	seen := make(map[string]struct{})

	var current schema.CommitRecord
	var open bool     // a header has been read and not yet finalized
	var degraded bool // some numstat line in the entry failed to parse

	flush := func() {
		if !open {
			return
		}
		open = false
		if _, dup := seen[current.Hash]; dup {
			return
		}
		seen[current.Hash] = struct{}{}
		if degraded {
			current.Parse = schema.ParsePartial
		}
		records = append(records, current)
	}

	for _, l := range strings.Split(string(out), "\n") {
		l = strings.Trim(l, " \t\r\n'")

		if strings.HasPrefix(l, "--") {
			// Commit header line
			flush()
			hash, author, date, ok := parseCommitHeader(l)
			if !ok {
				contract.LogWarn(fmt.Sprintf("Skipping commit entry in %s", repoPath), errors.New("malformed header: "+l))
				continue
			}
			current = schema.CommitRecord{
				Author:    author,
				Timestamp: date,
				Hash:      hash,
				Parse:     schema.ParseFull,
			}
			open = true
			degraded = false
			continue
		}
		if l == "" || !open {
			continue // Skip blank lines and stats without a header
		}

		// File stats line
		add, del, ok := parseNumstatLine(l)
		if !ok {
			degraded = true
		}
		current.LinesAdded += add
		current.LinesDeleted += del
	}
	flush()

	return records
}

// parseCommitHeader extracts hash, author and date from a commit header line.
func parseCommitHeader(line string) (string, string, time.Time, bool) {
	if !strings.HasPrefix(line, "--") || len(line) < 5 { // --x|y|z minimum
		return "", "", time.Time{}, false
	}
	parts := strings.SplitN(line[2:], "|", 3) // commit|author|date
	if len(parts) != 3 {
		return "", "", time.Time{}, false
	}
	hash, author, dateStr := parts[0], parts[1], parts[2]
	if hash == "" {
		return "", "", time.Time{}, false
	}
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		// A record without a timestamp cannot be bucketed into a week.
		return "", "", time.Time{}, false
	}
	return hash, author, date, true
}

// parseNumstatLine parses an "added<TAB>deleted<TAB>path" stats line.
// Binary files report "-" for both counts; those default to zero and mark
// the enclosing record partial.
func parseNumstatLine(line string) (int, int, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, 0, false
	}
	add, addOK := parseChurnValue(parts[0])
	del, delOK := parseChurnValue(parts[1])
	return add, del, addOK && delOK
}

// parseChurnValue converts a churn string to int, handling "-" as 0.
func parseChurnValue(s string) (int, bool) {
	if s == "-" {
		return 0, false
	}
	if val, err := strconv.Atoi(s); err == nil && val >= 0 {
		return val, true
	}
	return 0, false
}

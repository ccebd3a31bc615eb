package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gitLogBasic mirrors git log --numstat output with the quoted header format
// the local client requests.
const gitLogBasic = `'--aaa111|Alice|2024-01-01T10:00:00Z'
10	2	main.go
5	1	util.go

'--bbb222|Bob|2024-01-03T12:30:00+02:00'
3	0	doc.md
`

func TestParseCommitLogBasic(t *testing.T) {
	records := parseCommitLog("/repo", []byte(gitLogBasic))
	require.Len(t, records, 2)

	assert.Equal(t, "aaa111", records[0].Hash)
	assert.Equal(t, "Alice", records[0].Author)
	assert.Equal(t, 15, records[0].LinesAdded)
	assert.Equal(t, 3, records[0].LinesDeleted)
	assert.Equal(t, schema.ParseFull, records[0].Parse)
	assert.Equal(t, time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC), records[0].Timestamp)

	assert.Equal(t, "bbb222", records[1].Hash)
	assert.Equal(t, "Bob", records[1].Author)
	assert.Equal(t, 3, records[1].LinesAdded)
	assert.Equal(t, 0, records[1].LinesDeleted)
	// The original zone offset is preserved on the record.
	assert.Equal(t, 12, records[1].Timestamp.Hour())
	_, offset := records[1].Timestamp.Zone()
	assert.Equal(t, 2*3600, offset)
}

// TestParseCommitLogBinaryChurn verifies that "-" churn values (binary files)
// default to zero and degrade the record to partial.
func TestParseCommitLogBinaryChurn(t *testing.T) {
	log := `'--ccc333|Carol|2024-02-01T00:00:00Z'
-	-	logo.png
7	4	readme.md
`
	records := parseCommitLog("/repo", []byte(log))
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].LinesAdded)
	assert.Equal(t, 4, records[0].LinesDeleted)
	assert.Equal(t, schema.ParsePartial, records[0].Parse)
}

// TestParseCommitLogMalformedEntries verifies that bad headers are skipped
// without aborting the surrounding entries.
func TestParseCommitLogMalformedEntries(t *testing.T) {
	tests := []struct {
		name string
		log  string
	}{
		{
			name: "missing fields in header",
			log: "'--onlyhash'\n" +
				"1\t1\tfile.go\n",
		},
		{
			name: "empty hash",
			log: "'--|Alice|2024-01-01T00:00:00Z'\n" +
				"1\t1\tfile.go\n",
		},
		{
			name: "unparseable date",
			log: "'--ddd444|Dave|yesterday'\n" +
				"1\t1\tfile.go\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good := "'--eee555|Eve|2024-03-01T00:00:00Z'\n2\t2\tok.go\n"
			records := parseCommitLog("/repo", []byte(tt.log+"\n"+good))
			require.Len(t, records, 1)
			assert.Equal(t, "eee555", records[0].Hash)
			assert.Equal(t, 2, records[0].LinesAdded)
		})
	}
}

// TestParseCommitLogDuplicateHash verifies per-repository hash deduplication.
func TestParseCommitLogDuplicateHash(t *testing.T) {
	log := `'--fff666|Frank|2024-01-01T00:00:00Z'
1	0	a.go

'--fff666|Frank|2024-01-01T00:00:00Z'
1	0	a.go

'--ggg777|Grace|2024-01-02T00:00:00Z'
2	0	b.go
`
	records := parseCommitLog("/repo", []byte(log))
	require.Len(t, records, 2)
	assert.Equal(t, "fff666", records[0].Hash)
	assert.Equal(t, 1, records[0].LinesAdded)
	assert.Equal(t, "ggg777", records[1].Hash)
}

// TestParseCommitLogStrayStats verifies stats lines without a preceding
// header are ignored.
func TestParseCommitLogStrayStats(t *testing.T) {
	log := "5\t5\torphan.go\n\n'--hhh888|Henry|2024-01-01T00:00:00Z'\n1\t1\tc.go\n"
	records := parseCommitLog("/repo", []byte(log))
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].LinesAdded)
}

func TestParseCommitLogEmpty(t *testing.T) {
	assert.Empty(t, parseCommitLog("/repo", nil))
	assert.Empty(t, parseCommitLog("/repo", []byte("\n\n")))
}

// TestExtractCommits exercises the extraction path through a mocked client.
func TestExtractCommits(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, "/repo", since).Return([]byte(gitLogBasic), nil)

	records, err := ExtractCommits(ctx, mockClient, "/repo", since)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	mockClient.AssertExpectations(t)
}

func TestExtractCommitsGitFailure(t *testing.T) {
	ctx := context.Background()

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetCommitLog", ctx, "/broken", time.Time{}).Return([]byte(nil), errors.New("not a git repository"))

	records, err := ExtractCommits(ctx, mockClient, "/broken", time.Time{})
	require.Error(t, err)
	assert.Nil(t, records)
	mockClient.AssertExpectations(t)
}

func TestParseChurnValue(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-", 0, false},
		{"abc", 0, false},
		{"-7", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseChurnValue(tt.input)
		assert.Equal(t, tt.expected, got, "value for %q", tt.input)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.input)
	}
}

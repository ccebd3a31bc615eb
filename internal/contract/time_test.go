package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// TestParseRelativeTime covers various valid and invalid cases.
func TestParseRelativeTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		// Valid tests: Ensure units and casing are parsed correctly relative to fixedNow
		{
			name:        "valid plural months (mixed case)",
			input:       "3 MoNtHs AgO",
			expected:    fixedNow.AddDate(0, -3, 0),
			expectError: false,
		},
		{
			name:        "valid singular week (capitalized)",
			input:       "1 Week Ago",
			expected:    fixedNow.Add(time.Duration(-1) * 7 * 24 * time.Hour),
			expectError: false,
		},
		{
			name:        "valid 10 days (upper case)",
			input:       "10 DAYS AGO",
			expected:    fixedNow.Add(time.Duration(-10) * 24 * time.Hour),
			expectError: false,
		},
		{
			name:        "valid years",
			input:       "2 years ago",
			expected:    fixedNow.AddDate(-2, 0, 0),
			expectError: false,
		},
		{
			name:        "valid minutes",
			input:       "45 minutes ago",
			expected:    fixedNow.Add(-45 * time.Minute),
			expectError: false,
		},
		// Invalid tests: Ensure only supported formats/units are accepted
		{
			name:        "invalid missing ago",
			input:       "2 years",
			expectError: true,
		},
		{
			name:        "invalid bad unit (decades)",
			input:       "4 decades ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one year ago",
			expectError: true,
		},
		{
			name:        "invalid empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tResult, err := ParseRelativeTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.Round(time.Second), tResult.Round(time.Second), "Parsed time mismatch")
			}
		})
	}
}

// TestParseSinceTime covers the absolute layouts and the relative fallback.
func TestParseSinceTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "RFC3339 datetime",
			input:    "2024-06-15T08:30:00Z",
			expected: time.Date(2024, time.June, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "space separated datetime",
			input:    "2024-06-15 08:30:00",
			expected: time.Date(2024, time.June, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2024-06-15",
			expected: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "relative fallback",
			input:    "1 week ago",
			expected: fixedNow.Add(-7 * 24 * time.Hour),
		},
		{
			name:     "surrounding whitespace tolerated",
			input:    "  2024-06-15  ",
			expected: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "garbage input",
			input:       "not a date",
			expectError: true,
		},
		{
			name:        "empty input",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSinceTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.Round(time.Second), got.Round(time.Second))
			}
		})
	}
}

// FuzzParseRelativeTime fuzzes the ParseRelativeTime function with random inputs.
func FuzzParseRelativeTime(f *testing.F) {
	// Add some seed inputs
	seeds := []string{
		"1 year ago",
		"2 months ago",
		"3 weeks ago",
		"4 days ago",
		"5 hours ago",
		"6 minutes ago",
		"10 years ago",
		"0 years ago", // edge case
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		now := time.Now()
		_, err := ParseRelativeTime(input, now)
		// We don't assert on the result, just that it doesn't panic
		_ = err // ignore error, we're testing for crashes
	})
}

// FuzzParseSinceTime fuzzes the combined absolute/relative parser.
func FuzzParseSinceTime(f *testing.F) {
	seeds := []string{
		"2024-06-15T08:30:00Z",
		"2024-06-15 08:30:00",
		"2024-06-15",
		"1 week ago",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, err := ParseSinceTime(input, time.Now())
		_ = err
	})
}

package schedule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesTokensVerbatim(t *testing.T) {
	entries := Parse("01-01-2024, 01-04-2024 ,01-07-2024,  01-10-2024", "1000, 1000, 1000, 1000")
	require.Len(t, entries, 4)

	want := []string{"01-01-2024", "01-04-2024", "01-07-2024", "01-10-2024"}
	for i, e := range entries {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, want[i], e.DateToken)
		assert.Equal(t, 1000.0, e.Amount)
	}
}

func TestParseEmptySchedule(t *testing.T) {
	assert.Nil(t, Parse("", "100, 200"))
	assert.Nil(t, Parse("  ,  , ", "100"))
}

func TestParseDropsEmptyDateTokens(t *testing.T) {
	entries := Parse("01-01-2024,, 01-04-2024", "500, 500")
	require.Len(t, entries, 2)
	assert.Equal(t, "01-04-2024", entries[1].DateToken)
	// Amounts stay positional against the compacted date list.
	assert.Equal(t, 500.0, entries[1].Amount)
}

func TestParseAmountsShorterThanDates(t *testing.T) {
	entries := Parse("01-01-2024, 01-04-2024, 01-07-2024", "1000")
	require.Len(t, entries, 3)
	assert.Equal(t, 1000.0, entries[0].Amount)
	assert.True(t, math.IsNaN(entries[1].Amount))
	assert.True(t, math.IsNaN(entries[2].Amount))
}

func TestParseUnparseableAmountIsNaN(t *testing.T) {
	entries := Parse("01-01-2024, 01-04-2024", "abc, 750.50")
	require.Len(t, entries, 2)
	assert.True(t, math.IsNaN(entries[0].Amount))
	assert.Equal(t, 750.50, entries[1].Amount)
}

func TestCanonicalDate(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"dash display form", "01-04-2024", "2024-04-01"},
		{"slash display form", "15/09/2023", "2023-09-15"},
		{"unpadded components", "1-4-2024", "2024-04-01"},
		{"iso passthrough", "2024-04-01", "2024-04-01"},
		{"day out of range", "32-01-2024", "32-01-2024"},
		{"month out of range", "01-13-2024", "01-13-2024"},
		{"year too old", "01-01-1900", "01-01-1900"},
		{"not a date", "next month", "next month"},
		{"garbage separators", "01.04.2024", "01.04.2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanonicalDate(tc.token))
		})
	}
}

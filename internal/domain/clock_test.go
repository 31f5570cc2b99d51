package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	clock := Clock()

	cases := []struct {
		date string
		want int
	}{
		{"2026-01-22", 7},
		{"2026-01-16", 1},
		{"2026-01-15", 0},
		{"2026-01-14", -1},
		{"2026-02-15", 31},
		{"2025-12-15", -31},
	}
	for _, tc := range cases {
		got, err := DaysUntil(tc.date, clock)
		require.NoError(t, err, tc.date)
		assert.Equal(t, tc.want, got, tc.date)
	}
}

func TestDaysUntilRejectsMalformedDates(t *testing.T) {
	clock := Clock()
	for _, date := range []string{"", "2026/01/22", "22-01-2026", "not a date"} {
		_, err := DaysUntil(date, clock)
		assert.Error(t, err, date)
	}
}

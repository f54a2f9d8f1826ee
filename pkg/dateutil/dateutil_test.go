package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestMonthsBetween checks the 30.44-day month normalization
func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"Same day", date(2025, 1, 1), date(2025, 1, 1), 0},
		{"One calendar month", date(2025, 1, 1), date(2025, 2, 1), 1},
		{"Two weeks rounds down", date(2025, 1, 1), date(2025, 1, 15), 0},
		{"Sixteen days rounds up", date(2025, 1, 15), date(2025, 1, 31), 1},
		{"Leap year span", date(2020, 1, 1), date(2021, 1, 1), 12},
		{"Thirty years", date(2025, 1, 1), date(2055, 1, 1), 360},
		{"End before start", date(2025, 3, 1), date(2025, 1, 1), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestEarliest(t *testing.T) {
	assert.True(t, Earliest().IsZero())
	assert.Equal(t, date(2024, 6, 1), Earliest(date(2025, 1, 1), date(2024, 6, 1), date(2026, 1, 1)))
	assert.Equal(t, date(2025, 1, 1), Earliest(date(2025, 1, 1)))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 14), d)
	assert.Equal(t, "2025-03-14", FormatDate(d))

	_, err = ParseDate("03/14/2025")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 5, 6, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, date(2025, 5, 6), Today(now))
}

func TestAddYears(t *testing.T) {
	assert.Equal(t, date(2055, 1, 1), AddYears(date(2025, 1, 1), 30))
	assert.Equal(t, date(2029, 3, 1), AddYears(date(2028, 2, 29), 1))
}

package dateutil

import (
	"fmt"
	"math"
	"time"
)

// DaysPerMonth is the average month length used to turn durations into month counts
const DaysPerMonth = 30.44

// DateLayout is the calendar date format accepted in configuration and API payloads
const DateLayout = "2006-01-02"

// MonthsBetween returns the number of average-length months from start to end,
// rounded to the nearest month. The result is negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	return int(math.Round(days / DaysPerMonth))
}

// Earliest returns the earliest of the given dates, or the zero time when none are given
func Earliest(dates ...time.Time) time.Time {
	var earliest time.Time
	for i, d := range dates {
		if i == 0 || d.Before(earliest) {
			earliest = d
		}
	}
	return earliest
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today truncates a timestamp to its calendar date in UTC
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

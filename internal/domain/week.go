package domain

import (
	"fmt"
	"time"
)

// WeekID formats t as an ISO-8601 week identifier in UTC, e.g. "2025-W07".
func WeekID(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeekID returns the Monday 00:00 UTC that starts the given ISO week.
func ParseWeekID(id string) (time.Time, error) {
	var year, week int
	if n, err := fmt.Sscanf(id, "%4d-W%2d", &year, &week); err != nil || n != 2 || len(id) != 8 {
		return time.Time{}, InvalidInput("malformed week %q, expected YYYY-Www", id)
	}
	if week < 1 || week > 53 {
		return time.Time{}, InvalidInput("week %q out of range", id)
	}

	// January 4th is always in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	start := jan4.AddDate(0, 0, -DayIndex(jan4)+(week-1)*7)
	if y, w := start.ISOWeek(); y != year || w != week {
		return time.Time{}, InvalidInput("year %d has no week %d", year, week)
	}
	// Sscanf skips spaces and accepts signs, so only the canonical form passes.
	if WeekID(start) != id {
		return time.Time{}, InvalidInput("malformed week %q, expected YYYY-Www", id)
	}
	return start, nil
}

// WeekBounds returns [start, end) of the ISO week containing t, in UTC.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -DayIndex(day))
	return start, start.AddDate(0, 0, DaysPerWeek)
}

// DayIndex maps Monday..Sunday to 0..6.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Package dates provides the local-calendar math shared by the engines:
// day keys, period ranges, and week/month boundaries. Weeks start on Monday.
package dates

import (
	"fmt"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

// dayKeyLayout is the local calendar-day key format.
const dayKeyLayout = "2006-01-02"

// DayKey returns the local YYYY-MM-DD key for t.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// ParseDayKey converts a day key back to a time anchored at local noon.
// Noon keeps day arithmetic stable across DST transitions.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day key %q: %w", key, err)
	}
	return t.Add(12 * time.Hour), nil
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// StartOfWeek returns local midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	// time.Weekday: Sunday=0 ... Saturday=6; shift so Monday opens the week.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	start := StartOfMonth(t)
	return start.AddDate(0, 1, -1).Day()
}

// PeriodRange returns the half-open [start, end) range the given tier covers
// at the reference time now: the current day, the current Monday-start week,
// or the current calendar month.
func PeriodRange(p model.Period, now time.Time) (time.Time, time.Time) {
	switch p {
	case model.PeriodDaily:
		start := StartOfDay(now)
		return start, start.AddDate(0, 0, 1)
	case model.PeriodWeekly:
		start := StartOfWeek(now)
		return start, start.AddDate(0, 0, 7)
	case model.PeriodMonthly:
		start := StartOfMonth(now)
		return start, start.AddDate(0, 1, 0)
	}
	return time.Time{}, time.Time{}
}

// InRange reports whether t falls within the half-open [start, end) range.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Local().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

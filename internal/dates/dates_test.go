package dates

import (
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

func TestDayKeyRoundTrip(t *testing.T) {
	key := "2025-06-15"
	day, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey: %v", err)
	}
	if day.Hour() != 12 {
		t.Fatalf("parsed day anchored at hour %d, want 12", day.Hour())
	}
	if DayKey(day) != key {
		t.Fatalf("round trip = %q, want %q", DayKey(day), key)
	}
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// June 2025: the 15th is a Sunday, the 9th the Monday of its week.
	tests := []struct {
		day  int
		want int
	}{
		{9, 9},   // Monday maps to itself
		{11, 9},  // midweek
		{15, 9},  // Sunday belongs to the preceding Monday
		{16, 16}, // next Monday starts a new week
	}

	for _, tt := range tests {
		d := time.Date(2025, 6, tt.day, 15, 30, 0, 0, time.Local)
		got := StartOfWeek(d)
		if got.Day() != tt.want || got.Weekday() != time.Monday {
			t.Fatalf("StartOfWeek(Jun %d) = %v, want Jun %d (Monday)", tt.day, got, tt.want)
		}
		if got.Hour() != 0 {
			t.Fatalf("week start not at midnight: %v", got)
		}
	}
}

func TestPeriodRangeHalfOpen(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	start, end := PeriodRange(model.PeriodDaily, now)
	if !InRange(now, start, end) {
		t.Fatal("now should fall inside its own daily range")
	}
	if InRange(end, start, end) {
		t.Fatal("range end must be exclusive")
	}
	if !InRange(start, start, end) {
		t.Fatal("range start must be inclusive")
	}

	start, end = PeriodRange(model.PeriodMonthly, now)
	if start.Day() != 1 || start.Month() != time.June {
		t.Fatalf("month start = %v, want June 1", start)
	}
	if end.Month() != time.July || end.Day() != 1 {
		t.Fatalf("month end = %v, want July 1", end)
	}
}

func TestDaysInMonth(t *testing.T) {
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)
	if got := DaysInMonth(feb); got != 29 {
		t.Fatalf("DaysInMonth(Feb 2024) = %d, want 29", got)
	}
	apr := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	if got := DaysInMonth(apr); got != 30 {
		t.Fatalf("DaysInMonth(Apr 2025) = %d, want 30", got)
	}
}

package consistency

import (
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// June 2025: the 15th is a Sunday; the month starts on a Sunday.
var today = time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)

func juneDay(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.Local)
}

func spend(amt float64, at time.Time) model.Expense {
	return model.Expense{Amount: amt, Category: model.CategoryFood, Date: at, Kind: model.KindBehavioral}
}

func status(t *testing.T, m map[string]model.DayInfo, day int) model.DayStatus {
	t.Helper()
	info, ok := m[dates.DayKey(juneDay(day))]
	if !ok {
		t.Fatalf("day %d missing from map", day)
	}
	return info.Status
}

func TestBuildDayMapCoversWholeMonth(t *testing.T) {
	m := BuildDayMap(nil, 50, today, today)
	if len(m) != 30 {
		t.Fatalf("map has %d days, want 30 for June", len(m))
	}
	for key, info := range m {
		if info.Status != model.DayEmpty {
			t.Fatalf("%s = %s, want empty with no expenses", key, info.Status)
		}
		if info.Limit != 50 {
			t.Fatalf("%s limit = %.0f, want 50", key, info.Limit)
		}
	}
}

func TestBuildDayMapStatuses(t *testing.T) {
	expenses := []model.Expense{
		spend(30, juneDay(2)),  // green: pass, not adjacent to the active streak
		spend(30, juneDay(3)),  // green
		spend(500, juneDay(4)), // over limit: the day the streak was lost on
		spend(20, juneDay(14)), // gold: active streak
		spend(20, juneDay(15)), // gold: today
	}

	m := BuildDayMap(expenses, 50, today, today)

	if got := status(t, m, 2); got != model.DayGreen {
		t.Fatalf("day 2 = %s, want green", got)
	}
	if got := status(t, m, 3); got != model.DayGreen {
		t.Fatalf("day 3 = %s, want green", got)
	}
	if got := status(t, m, 4); got != model.DayBreak {
		t.Fatalf("day 4 = %s, want break (previous day passed)", got)
	}
	if got := status(t, m, 5); got != model.DayEmpty {
		t.Fatalf("day 5 = %s, want empty", got)
	}
	if got := status(t, m, 14); got != model.DayGold {
		t.Fatalf("day 14 = %s, want gold", got)
	}
	if got := status(t, m, 15); got != model.DayGold {
		t.Fatalf("day 15 = %s, want gold", got)
	}
	if got := status(t, m, 20); got != model.DayEmpty {
		t.Fatalf("future day 20 = %s, want empty", got)
	}
}

func TestBuildDayMapLonePassDayIsGreen(t *testing.T) {
	// A single pass day today is an active streak of length 1 and must not
	// be highlighted gold.
	m := BuildDayMap([]model.Expense{spend(10, juneDay(15))}, 50, today, today)

	if got := status(t, m, 15); got != model.DayGreen {
		t.Fatalf("lone pass day = %s, want green", got)
	}
}

func TestBuildDayMapStructuralIgnored(t *testing.T) {
	rent := model.Expense{Amount: 900, Category: model.CategoryOther, Date: juneDay(15), Kind: model.KindStructural}
	m := BuildDayMap([]model.Expense{rent}, 50, today, today)

	info := m[dates.DayKey(juneDay(15))]
	if info.HasEntry || info.Total != 0 {
		t.Fatalf("structural expense leaked into day info: %+v", info)
	}
}

func TestBuildDayMapActiveStreakCrossesMonths(t *testing.T) {
	// Streak running May 31 -> June 1, viewed in June: June 1 is gold even
	// though the streak partner lives in the previous month.
	firstOfJune := time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		spend(10, time.Date(2025, 5, 31, 12, 0, 0, 0, time.Local)),
		spend(10, firstOfJune),
	}

	m := BuildDayMap(expenses, 50, firstOfJune, firstOfJune)
	if got := m[dates.DayKey(firstOfJune)].Status; got != model.DayGold {
		t.Fatalf("June 1 = %s, want gold (streak spans the month boundary)", got)
	}
}

func TestMonthGrid(t *testing.T) {
	// June 2025 starts on a Sunday: first week has a single populated cell.
	weeks := MonthGrid(today)

	if len(weeks) != 6 {
		t.Fatalf("June 2025 spans %d grid weeks, want 6", len(weeks))
	}
	first := weeks[0]
	for col := 0; col < 6; col++ {
		if first[col] != 0 {
			t.Fatalf("week 0 col %d = %d, want empty", col, first[col])
		}
	}
	if first[6] != 1 {
		t.Fatalf("week 0 Sunday = %d, want 1", first[6])
	}
	if weeks[1][0] != 2 {
		t.Fatalf("week 1 Monday = %d, want 2", weeks[1][0])
	}

	last := weeks[len(weeks)-1]
	if last[0] != 30 {
		t.Fatalf("final week Monday = %d, want 30", last[0])
	}
}

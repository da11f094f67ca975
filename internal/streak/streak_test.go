package streak

import (
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

var day3 = time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)

func daysAgo(n int) time.Time {
	return day3.AddDate(0, 0, -n)
}

func spend(amt float64, at time.Time) model.Expense {
	return model.Expense{Amount: amt, Category: model.CategoryOther, Date: at, Kind: model.KindBehavioral}
}

func TestCalculateEmptyDayNeverPasses(t *testing.T) {
	// day1: three behavioral expenses totaling 40, day2: nothing,
	// day3 (today): one expense of 200 against a limit of 50.
	expenses := []model.Expense{
		spend(10, daysAgo(2)),
		spend(10, daysAgo(2)),
		spend(20, daysAgo(2)),
		spend(200, day3),
	}

	m := Calculate(expenses, 50, day3)
	if m.CurrentStreak != 0 {
		t.Fatalf("currentStreak = %d, want 0 (today over limit)", m.CurrentStreak)
	}

	// Evaluated as of the empty day2, the streak is still 0: a day without
	// entries never passes, even though day1 did.
	m = Calculate(expenses, 50, daysAgo(1))
	if m.CurrentStreak != 0 {
		t.Fatalf("currentStreak as of empty day = %d, want 0", m.CurrentStreak)
	}
	if m.LongestStreak != 1 {
		t.Fatalf("longestStreak = %d, want 1 (day1 passed)", m.LongestStreak)
	}
}

func TestCalculateLongestVsCurrent(t *testing.T) {
	// Five pass days, then a broken day, then today failing.
	var expenses []model.Expense
	for i := 7; i >= 3; i-- {
		expenses = append(expenses, spend(30, daysAgo(i)))
	}
	expenses = append(expenses, spend(500, daysAgo(2))) // broken day
	expenses = append(expenses, spend(500, day3))       // today fails too

	m := Calculate(expenses, 50, day3)
	if m.LongestStreak != 5 {
		t.Fatalf("longestStreak = %d, want 5", m.LongestStreak)
	}
	if m.CurrentStreak != 0 {
		t.Fatalf("currentStreak = %d, want 0", m.CurrentStreak)
	}
	if m.HasActiveStreak {
		t.Fatal("hasActiveStreak should be false")
	}
	if m.LastBrokenAt == nil || !dates.SameDay(*m.LastBrokenAt, day3) {
		t.Fatalf("lastBrokenAt = %v, want today (first failing day of the backward walk)", m.LastBrokenAt)
	}
}

func TestCalculateCurrentStreakRunsToToday(t *testing.T) {
	var expenses []model.Expense
	for i := 3; i >= 0; i-- {
		expenses = append(expenses, spend(20, daysAgo(i)))
	}

	m := Calculate(expenses, 50, day3)
	if m.CurrentStreak != 4 {
		t.Fatalf("currentStreak = %d, want 4", m.CurrentStreak)
	}
	if m.LongestStreak != 4 {
		t.Fatalf("longestStreak = %d, want 4", m.LongestStreak)
	}
	if !m.HasActiveStreak {
		t.Fatal("hasActiveStreak should be true")
	}
}

func TestCalculateStructuralExpensesIgnored(t *testing.T) {
	rent := model.Expense{Amount: 900, Category: model.CategoryOther, Date: day3, Kind: model.KindStructural}
	expenses := []model.Expense{spend(20, day3), rent}

	m := Calculate(expenses, 50, day3)
	if m.CurrentStreak != 1 {
		t.Fatalf("currentStreak = %d, want 1 (structural spend must not break the day)", m.CurrentStreak)
	}
}

func TestCalculateExactlyAtLimitPasses(t *testing.T) {
	m := Calculate([]model.Expense{spend(50, day3)}, 50, day3)
	if m.CurrentStreak != 1 {
		t.Fatalf("currentStreak = %d, want 1 (total equal to limit passes)", m.CurrentStreak)
	}
}

func TestNextUnlockIdempotent(t *testing.T) {
	now := day3

	first := NextUnlock(7, nil, now)
	if first == nil {
		t.Fatal("expected an unlock at streak 7")
	}
	if first.ID != "streak_7" || first.Value != 7 {
		t.Fatalf("unlocked %s (value %d), want streak_7", first.ID, first.Value)
	}

	// A second evaluation cycle with the same streak value must not unlock
	// the milestone again.
	second := NextUnlock(7, []model.AchievedMilestone{*first}, now)
	if second != nil {
		t.Fatalf("second unlock = %+v, want nil", second)
	}
}

func TestNextUnlockOffThreshold(t *testing.T) {
	if got := NextUnlock(8, nil, day3); got != nil {
		t.Fatalf("unlock at streak 8 = %+v, want nil", got)
	}
	if got := NextUnlock(0, nil, day3); got != nil {
		t.Fatalf("unlock at streak 0 = %+v, want nil", got)
	}
}

func TestCelebrationFor(t *testing.T) {
	tests := []struct {
		name     string
		prev     int
		current  int
		wantType CelebrationType
		wantNil  bool
	}{
		{"first safe day", 0, 1, CelebrationNewStreak, false},
		{"milestone crossed", 6, 7, CelebrationMilestone, false},
		{"no growth", 7, 7, "", true},
		{"streak broken", 7, 0, "", true},
		{"ordinary growth", 4, 5, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CelebrationFor(tt.prev, tt.current)
			if tt.wantNil {
				if c != nil {
					t.Fatalf("celebration = %+v, want nil", c)
				}
				return
			}
			if c == nil {
				t.Fatal("expected a celebration")
			}
			if c.Type != tt.wantType || c.Count != tt.current {
				t.Fatalf("celebration = %+v, want type %s count %d", c, tt.wantType, tt.current)
			}
		})
	}
}

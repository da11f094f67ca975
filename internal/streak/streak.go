// Package streak derives safe-spending streak metrics from the raw ledger.
package streak

import (
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// dayTotals sums behavioral spend per local calendar day. A day missing from
// the map has no behavioral entries at all.
func dayTotals(expenses []model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.Kind != model.KindBehavioral {
			continue
		}
		totals[dates.DayKey(e.Date)] += e.Amount
	}
	return totals
}

// passDay reports whether the day identified by key is a pass day: it has at
// least one behavioral expense and the day's total stays within the limit.
// A day with no entries is never a pass day; absence of data does not count
// as success.
func passDay(totals map[string]float64, key string, dailyLimit float64) bool {
	total, hasEntry := totals[key]
	return hasEntry && total <= dailyLimit
}

// oldestDay returns local midnight of the earliest behavioral expense, or
// false when the ledger has none.
func oldestDay(expenses []model.Expense) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, e := range expenses {
		if e.Kind != model.KindBehavioral {
			continue
		}
		d := dates.StartOfDay(e.Date)
		if !found || d.Before(oldest) {
			oldest = d
			found = true
		}
	}
	return oldest, found
}

// Calculate recomputes streak metrics from scratch. The current streak walks
// backward from today counting consecutive pass days; the longest streak
// scans forward from the earliest expense to today.
func Calculate(expenses []model.Expense, dailyLimit float64, now time.Time) model.StreakMetrics {
	totals := dayTotals(expenses)
	today := dates.StartOfDay(now)

	current := 0
	var lastBrokenAt *time.Time

	cursor := today
	for {
		if !passDay(totals, dates.DayKey(cursor), dailyLimit) {
			broken := cursor
			lastBrokenAt = &broken
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	longest := 0
	if oldest, ok := oldestDay(expenses); ok {
		run := 0
		for d := oldest; !d.After(today); d = d.AddDate(0, 0, 1) {
			if passDay(totals, dates.DayKey(d), dailyLimit) {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
	}

	return model.StreakMetrics{
		CurrentStreak:   current,
		LongestStreak:   longest,
		HasActiveStreak: current > 0,
		LastBrokenAt:    lastBrokenAt,
	}
}

// ActiveDays returns the set of day keys in the current streak: today walking
// backward through consecutive pass days. Used by the consistency calendar.
func ActiveDays(expenses []model.Expense, dailyLimit float64, now time.Time) map[string]bool {
	totals := dayTotals(expenses)

	active := make(map[string]bool)
	cursor := dates.StartOfDay(now)
	for {
		key := dates.DayKey(cursor)
		if !passDay(totals, key, dailyLimit) {
			break
		}
		active[key] = true
		cursor = cursor.AddDate(0, 0, -1)
	}
	return active
}

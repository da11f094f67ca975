// Package insight computes candidate signals from the ledger and selects a
// small prioritized subset for display.
package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// spendGroup is a bucket of expenses sharing a week or month start.
type spendGroup struct {
	start time.Time
	total float64
}

// groupTotals buckets expense totals by the start time produced by keyFn,
// sorted chronologically.
func groupTotals(expenses []model.Expense, keyFn func(time.Time) time.Time) []spendGroup {
	buckets := make(map[time.Time]float64)
	for _, e := range expenses {
		buckets[keyFn(e.Date)] += e.Amount
	}

	groups := make([]spendGroup, 0, len(buckets))
	for start, total := range buckets {
		groups = append(groups, spendGroup{start: start, total: total})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].start.Before(groups[j].start)
	})
	return groups
}

// monthlyChange compares the two most recent months of spending. Nil when
// fewer than two months exist or the previous month's total is zero.
func monthlyChange(expenses []model.Expense) *model.InsightItem {
	groups := groupTotals(expenses, dates.StartOfMonth)
	if len(groups) < 2 {
		return nil
	}

	current := groups[len(groups)-1].total
	previous := groups[len(groups)-2].total
	if previous == 0 {
		return nil
	}

	change := math.Round((current - previous) / previous * 100)
	abs := math.Abs(change)

	tone := model.ToneNeutral
	if abs >= 5 {
		if change > 0 {
			tone = model.ToneNegative
		} else {
			tone = model.TonePositive
		}
	}

	direction := "more"
	if change <= 0 {
		direction = "less"
	}

	return &model.InsightItem{
		Type:        model.InsightMonthlyChange,
		Title:       "Monthly change",
		Description: fmt.Sprintf("You spent %.0f%% %s than last month.", abs, direction),
		Tone:        tone,
	}
}

// topCategory finds the dominant spending category of the current month.
func topCategory(expenses []model.Expense) *model.InsightItem {
	groups := groupTotals(expenses, dates.StartOfMonth)
	if len(groups) == 0 {
		return nil
	}
	currentStart := groups[len(groups)-1].start

	totals := make(map[model.Category]float64)
	for _, e := range expenses {
		if dates.StartOfMonth(e.Date).Equal(currentStart) {
			totals[e.Category] += e.Amount
		}
	}

	var top model.Category
	var max float64
	for c, total := range totals {
		if total > max {
			max = total
			top = c
		}
	}
	if top == "" {
		return nil
	}

	return &model.InsightItem{
		Type:        model.InsightTopCategory,
		Title:       "Top category",
		Description: fmt.Sprintf("Most of your spending went to %s.", top),
		Tone:        model.ToneNeutral,
	}
}

// weeklyAverage reports the mean spend across all recorded weeks.
func weeklyAverage(expenses []model.Expense) *model.InsightItem {
	groups := groupTotals(expenses, dates.StartOfWeek)
	if len(groups) == 0 {
		return nil
	}

	var sum float64
	for _, g := range groups {
		sum += g.total
	}
	average := sum / float64(len(groups))

	if average < 1 {
		return &model.InsightItem{
			Type:        model.InsightWeeklyAverage,
			Title:       "Weekly average",
			Description: "Not enough data to calculate weekly average.",
			Tone:        model.ToneNeutral,
		}
	}

	return &model.InsightItem{
		Type:        model.InsightWeeklyAverage,
		Title:       "Weekly average",
		Description: fmt.Sprintf("Your weekly average is %.0f.", math.Round(average)),
		Tone:        model.ToneNeutral,
	}
}

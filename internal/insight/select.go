package insight

import (
	"sort"

	"github.com/theirongolddev/steady/internal/model"
)

// MaxVisibleInsights caps how many insights are shown at once.
const MaxVisibleInsights = 2

// priority is the fixed selection order, highest first. Selection never
// sorts by magnitude or recency.
var priority = []model.InsightType{
	model.InsightMonthlyChange,
	model.InsightWeekendSpike,
	model.InsightTopCategory,
	model.InsightWeeklyAverage,
	model.InsightOverLimitFrequency,
	model.InsightExpensiveWeekday,
	model.InsightInconsistentDays,
}

func priorityIndex(t model.InsightType) int {
	for i, p := range priority {
		if p == t {
			return i
		}
	}
	return len(priority)
}

// Select computes every candidate insight, drops the ineligible ones, and
// returns at most MaxVisibleInsights items in fixed priority order.
func Select(expenses []model.Expense, dailyLimit float64) []model.InsightItem {
	candidates := []*model.InsightItem{
		monthlyChange(expenses),
		topCategory(expenses),
		weeklyAverage(expenses),
	}
	candidates = append(candidates, behavioralInsights(expenses, dailyLimit)...)

	eligible := make([]model.InsightItem, 0, len(candidates))
	for _, c := range candidates {
		if c != nil {
			eligible = append(eligible, *c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return priorityIndex(eligible[i].Type) < priorityIndex(eligible[j].Type)
	})

	if len(eligible) > MaxVisibleInsights {
		eligible = eligible[:MaxVisibleInsights]
	}
	return eligible
}

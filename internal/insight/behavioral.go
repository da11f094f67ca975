package insight

import (
	"fmt"
	"math"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// Detector tuning. Each detector requires a minimum sample size before it
// activates, so sparse ledgers don't produce noisy conclusions.
const (
	spikeMultiplier        = 2.5
	dropMultiplier         = 0.3
	weekendSpikeMultiplier = 1.3
	weekdayOutlierFactor   = 1.25

	minWeekendDays      = 2
	minOverLimitDays    = 5
	minWeekdaySamples   = 7
	minVolatilityDays   = 4
	minWeekdaysWithData = 3
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// perDayTotals sums spend per distinct calendar day.
func perDayTotals(expenses []model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[dates.DayKey(e.Date)] += e.Amount
	}
	return totals
}

// weekendSpike fires when the average weekend day costs noticeably more than
// the average weekday. Needs at least two sampled days on each side.
func weekendSpike(expenses []model.Expense, dailyLimit float64) *model.InsightItem {
	var weekendTotal, weekdayTotal float64
	weekendDays := make(map[string]bool)
	weekDays := make(map[string]bool)

	for _, e := range expenses {
		key := dates.DayKey(e.Date)
		if dates.IsWeekend(e.Date) {
			weekendTotal += e.Amount
			weekendDays[key] = true
		} else {
			weekdayTotal += e.Amount
			weekDays[key] = true
		}
	}

	if len(weekendDays) < minWeekendDays || len(weekDays) < minWeekendDays {
		return nil
	}

	weekendAvg := weekendTotal / float64(len(weekendDays))
	weekdayAvg := weekdayTotal / float64(len(weekDays))

	if weekendAvg < weekdayAvg*weekendSpikeMultiplier {
		return nil
	}

	if weekendAvg > dailyLimit {
		return &model.InsightItem{
			Type:        model.InsightWeekendSpike,
			Title:       "Weekend spending pattern detected",
			Description: "Your weekend spending is consistently higher than weekdays and exceeds your daily limit. This could affect your budget.",
			Tone:        model.ToneNegative,
		}
	}
	return &model.InsightItem{
		Type:        model.InsightWeekendSpike,
		Title:       "Weekend spending pattern detected",
		Description: "Your average spending on weekends is noticeably higher than on weekdays. This might be worth keeping an eye on.",
		Tone:        model.ToneNeutral,
	}
}

// overLimitFrequency fires when the daily limit is exceeded on more than a
// quarter of sampled days.
func overLimitFrequency(expenses []model.Expense, dailyLimit float64) *model.InsightItem {
	totals := perDayTotals(expenses)
	if len(totals) < minOverLimitDays {
		return nil
	}

	overDays := 0
	for _, total := range totals {
		if total > dailyLimit {
			overDays++
		}
	}

	ratio := float64(overDays) / float64(len(totals))
	if ratio <= 0.25 {
		return nil
	}

	if ratio > 0.4 {
		return &model.InsightItem{
			Type:        model.InsightOverLimitFrequency,
			Title:       "Daily limit frequently exceeded",
			Description: "You exceed your daily spending limit on many days. This frequent overspending may make it hard to stay within your budget.",
			Tone:        model.ToneNegative,
		}
	}
	return &model.InsightItem{
		Type:        model.InsightOverLimitFrequency,
		Title:       "Daily limit frequently exceeded",
		Description: "You exceed your daily spending limit on several days. Being more mindful on those days could help improve consistency.",
		Tone:        model.ToneNeutral,
	}
}

// expensiveWeekday finds a single weekday whose average day cost stands out
// from the rest of the week.
func expensiveWeekday(expenses []model.Expense, dailyLimit float64) *model.InsightItem {
	if len(expenses) < minWeekdaySamples {
		return nil
	}

	var totals [7]float64
	var days [7]map[string]bool
	for i := range days {
		days[i] = make(map[string]bool)
	}
	for _, e := range expenses {
		wd := int(e.Date.Local().Weekday())
		totals[wd] += e.Amount
		days[wd][dates.DayKey(e.Date)] = true
	}

	type weekdayAvg struct {
		day int
		avg float64
	}
	var averages []weekdayAvg
	for wd := 0; wd < 7; wd++ {
		if len(days[wd]) == 0 {
			continue
		}
		averages = append(averages, weekdayAvg{day: wd, avg: totals[wd] / float64(len(days[wd]))})
	}
	if len(averages) < minWeekdaysWithData {
		return nil
	}

	var overall float64
	top := averages[0]
	for _, a := range averages {
		overall += a.avg
		if a.avg > top.avg {
			top = a
		}
	}
	overall /= float64(len(averages))

	if top.avg < overall*weekdayOutlierFactor {
		return nil
	}

	name := weekdayNames[top.day]
	if top.avg > dailyLimit {
		return &model.InsightItem{
			Type:        model.InsightExpensiveWeekday,
			Title:       fmt.Sprintf("%s tends to be more expensive", name),
			Description: fmt.Sprintf("Your spending on %s is consistently higher and often exceeds your daily limit. Planning ahead for this day could help control costs.", name),
			Tone:        model.ToneNegative,
		}
	}
	return &model.InsightItem{
		Type:        model.InsightExpensiveWeekday,
		Title:       fmt.Sprintf("%s tends to be more expensive", name),
		Description: fmt.Sprintf("You tend to spend more on %s compared to other days. Being aware of this pattern may help with budgeting.", name),
		Tone:        model.ToneNeutral,
	}
}

// inconsistentDays fires when day-to-day spend is highly volatile: at least
// one large spike and one near-zero day around the average.
func inconsistentDays(expenses []model.Expense, dailyLimit float64) *model.InsightItem {
	totals := perDayTotals(expenses)
	if len(totals) < minVolatilityDays {
		return nil
	}

	var sum float64
	max := math.Inf(-1)
	min := math.Inf(1)
	for _, total := range totals {
		sum += total
		max = math.Max(max, total)
		min = math.Min(min, total)
	}
	average := sum / float64(len(totals))
	if average < 1 {
		return nil
	}

	if max < average*spikeMultiplier || min > average*dropMultiplier {
		return nil
	}

	if max > dailyLimit*2 {
		return &model.InsightItem{
			Type:        model.InsightInconsistentDays,
			Title:       "Spending pattern looks inconsistent",
			Description: "Your spending fluctuates heavily between days, and some days exceed your daily limit by a large margin. This level of variation can make it difficult to stay in control of your budget.",
			Tone:        model.ToneNegative,
		}
	}
	return &model.InsightItem{
		Type:        model.InsightInconsistentDays,
		Title:       "Spending pattern looks inconsistent",
		Description: "Your spending varies significantly from day to day. Some days are much higher than others, which may make budgeting harder.",
		Tone:        model.ToneNeutral,
	}
}

// behavioralInsights runs every pattern detector over behavioral expenses
// only; structural spend says nothing about habits.
func behavioralInsights(expenses []model.Expense, dailyLimit float64) []*model.InsightItem {
	behavioral := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Kind == model.KindBehavioral {
			behavioral = append(behavioral, e)
		}
	}
	if len(behavioral) == 0 {
		return nil
	}

	return []*model.InsightItem{
		weekendSpike(behavioral, dailyLimit),
		overLimitFrequency(behavioral, dailyLimit),
		expensiveWeekday(behavioral, dailyLimit),
		inconsistentDays(behavioral, dailyLimit),
	}
}

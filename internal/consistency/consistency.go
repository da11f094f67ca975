// Package consistency builds the month calendar of per-day spending states.
package consistency

import (
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/streak"
)

// BuildDayMap derives a DayKey -> DayInfo map covering every day of the
// target month. The pass rule matches the streak engine; the active-streak
// walk runs over the full ledger from today, regardless of which month is
// displayed.
func BuildDayMap(expenses []model.Expense, dailyLimit float64, month, now time.Time) map[string]model.DayInfo {
	monthStart := dates.StartOfMonth(month)
	today := dates.StartOfDay(now)

	infos := make(map[string]model.DayInfo)
	for d := 0; d < dates.DaysInMonth(month); d++ {
		key := dates.DayKey(monthStart.AddDate(0, 0, d))
		infos[key] = model.DayInfo{Limit: dailyLimit, Status: model.DayEmpty}
	}

	for _, e := range expenses {
		if e.Kind != model.KindBehavioral {
			continue
		}
		key := dates.DayKey(e.Date)
		info, ok := infos[key]
		if !ok {
			continue // outside the displayed month
		}
		info.Total += e.Amount
		info.HasEntry = true
		infos[key] = info
	}

	for key, info := range infos {
		info.Pass = info.HasEntry && info.Total <= dailyLimit
		infos[key] = info
	}

	active := streak.ActiveDays(expenses, dailyLimit, now)

	for d := 0; d < dates.DaysInMonth(month); d++ {
		day := monthStart.AddDate(0, 0, d)
		key := dates.DayKey(day)
		info := infos[key]

		switch {
		// A lone pass day is not highlighted as a streak.
		case active[key] && len(active) >= 2:
			info.Status = model.DayGold
		case info.Pass:
			info.Status = model.DayGreen
		case day.Before(today) && infos[dates.DayKey(day.AddDate(0, 0, -1))].Pass:
			// The day the streak was lost on.
			info.Status = model.DayBreak
		default:
			info.Status = model.DayEmpty
		}

		infos[key] = info
	}

	return infos
}

// MonthGrid lays the month out as Monday-first weeks of seven cells.
// Zero marks a cell outside the month.
func MonthGrid(month time.Time) [][7]int {
	monthStart := dates.StartOfMonth(month)
	firstWeekday := (int(monthStart.Weekday()) + 6) % 7 // Monday = 0
	total := dates.DaysInMonth(month)

	var weeks [][7]int
	var week [7]int

	col := firstWeekday
	for day := 1; day <= total; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

package goal

import (
	"math"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

// Health compares the goal's recent contribution pace against its all-time
// pace over a weekly or monthly window: the all-time daily average projects
// an expected contribution for the window, and the actual contributions
// inside the window are measured against it.
func Health(g model.Goal, expenses []model.Expense, period model.Period, now time.Time) model.GoalHealthResult {
	daysPassed := int(math.Floor(now.Sub(g.StartDate).Hours() / 24))
	if daysPassed < 1 {
		daysPassed = 1
	}

	actualDaily := TotalSaved(g, expenses) / float64(daysPassed)

	daysInPeriod := 30.0
	if period == model.PeriodWeekly {
		daysInPeriod = 7
	}
	expected := actualDaily * daysInPeriod

	var actual float64
	for _, e := range expenses {
		if !e.IsGoalBoost || e.GoalID != g.ID {
			continue
		}
		if now.Sub(e.Date).Hours()/24 <= daysInPeriod {
			actual += e.EffectiveBoost()
		}
	}

	ratio := actual / math.Max(expected, 1)

	var health model.GoalHealth
	switch {
	case ratio >= 1.2:
		health = model.HealthExcellent
	case ratio >= 0.9:
		health = model.HealthGood
	case ratio >= 0.6:
		health = model.HealthWarning
	default:
		health = model.HealthBad
	}

	return model.GoalHealthResult{
		Health:   health,
		Expected: math.Round(expected),
		Actual:   math.Round(actual),
	}
}

// Package goal projects savings-goal pace and feasibility from the ledger.
package goal

import (
	"fmt"
	"math"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

const (
	msgAhead  = "You are ahead of schedule. Keep this pace."
	msgTight  = "You're slightly behind, but this goal is still realistic."
	msgAtRisk = "At this pace, reaching this goal may be difficult without adjustments."
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalSaved sums the boost contributions of expenses linked to the goal.
func TotalSaved(g model.Goal, expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.IsGoalBoost && e.GoalID == g.ID {
			total += e.EffectiveBoost()
		}
	}
	return total
}

// Projection computes the on-pace analysis for a goal. baselineDaily is the
// user's disposable-income-per-day capacity; pass zero when unknown. The
// ledger is never mutated.
func Projection(g model.Goal, expenses []model.Expense, baselineDaily float64, now time.Time) model.GoalProjection {
	daysPassed := int(math.Floor(now.Sub(g.StartDate).Hours() / 24))
	if daysPassed < 1 {
		daysPassed = 1
	}

	totalDays := g.DurationInDays
	daysRemaining := totalDays - daysPassed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	totalSaved := TotalSaved(g, expenses)
	remaining := math.Max(g.TargetAmount-totalSaved, 0)

	requiredDaily := 0.0
	if daysRemaining > 0 {
		requiredDaily = remaining / float64(daysRemaining)
	}

	actualDaily := totalSaved / float64(daysPassed)

	paceRatio := 1.0
	if requiredDaily > 0 {
		paceRatio = actualDaily / requiredDaily
	}

	var baselineRatio *float64
	if baselineDaily > 0 && requiredDaily > 0 {
		r := round2(baselineDaily / requiredDaily)
		baselineRatio = &r
	}

	var (
		feasibility model.Feasibility
		risk        model.RiskLevel
		message     string
	)
	switch {
	case paceRatio >= 1.1:
		feasibility, risk, message = model.FeasibilityGood, model.RiskLow, msgAhead
	case paceRatio >= 0.8:
		feasibility, risk, message = model.FeasibilityTight, model.RiskMedium, msgTight
	default:
		feasibility, risk, message = model.FeasibilityHeavy, model.RiskHigh, msgAtRisk
	}

	willMiss := false
	switch {
	case daysRemaining == 0 && remaining > 0:
		// Time is up with money still missing: missed regardless of pace.
		willMiss = true
	case baselineRatio != nil && *baselineRatio < 0.9:
		// Even spending the entire daily capacity on the goal falls short.
		willMiss = true
	}

	return model.GoalProjection{
		TotalSaved:    totalSaved,
		DaysPassed:    daysPassed,
		DaysRemaining: daysRemaining,
		TotalDays:     totalDays,
		RequiredDaily: math.Ceil(requiredDaily),
		ActualDaily:   math.Ceil(actualDaily),
		BaselineDaily: baselineDaily,
		BaselineRatio: baselineRatio,
		PaceRatio:     round2(paceRatio),
		Feasibility:   feasibility,
		RiskLevel:     risk,
		WillMissGoal:  willMiss,
		Message:       message,
	}
}

// Simulate answers "what if I saved extraDaily more per day" against the same
// required pace. Pure: base is copied, never mutated.
//
// The tight threshold here is 0.7, not the 0.8 the live projection uses: the
// simulator is meant to read slightly more optimistic than the live view.
func Simulate(base model.GoalProjection, extraDaily float64) model.GoalProjection {
	out := base
	out.ActualDaily = base.ActualDaily + extraDaily

	paceRatio := 1.0
	if base.RequiredDaily > 0 {
		paceRatio = out.ActualDaily / base.RequiredDaily
	}
	out.PaceRatio = round2(paceRatio)

	switch {
	case paceRatio >= 1.1:
		out.Feasibility = model.FeasibilityGood
		out.Message = fmt.Sprintf("With +%.0f/day, this goal becomes comfortably achievable.", extraDaily)
	case paceRatio >= 0.7:
		out.Feasibility = model.FeasibilityTight
		out.Message = fmt.Sprintf("With +%.0f/day, this goal is still achievable with focus.", extraDaily)
	default:
		out.Feasibility = model.FeasibilityHeavy
		out.Message = fmt.Sprintf("Even with +%.0f/day, this goal remains challenging.", extraDaily)
	}

	return out
}

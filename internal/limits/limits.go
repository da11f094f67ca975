// Package limits keeps the three nested spending ceilings consistent and
// classifies period spend against them.
package limits

import (
	"math"
	"time"

	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
)

// warnRatio is the warning threshold for limit status.
const warnRatio = 0.6

// Patch is a partial edit to a single tier. Nil fields are left untouched.
type Patch struct {
	Amount *float64
	Active *bool
}

// FilterForPeriod returns the expenses that count toward the given tier:
// every expense for the monthly tier, behavioral-only for daily and weekly.
func FilterForPeriod(expenses []model.Expense, period model.Period) []model.Expense {
	if period == model.PeriodMonthly {
		return expenses
	}
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Kind == model.KindBehavioral {
			out = append(out, e)
		}
	}
	return out
}

// Status sums the expenses that fall inside the tier's current date range and
// classifies the spend. Returns nil when limitAmount is not positive, since
// no meaningful ratio exists.
func Status(expenses []model.Expense, period model.Period, limitAmount float64, now time.Time) *model.LimitResult {
	if limitAmount <= 0 {
		return nil
	}

	start, end := dates.PeriodRange(period, now)

	var total float64
	for _, e := range FilterForPeriod(expenses, period) {
		if dates.InRange(e.Date, start, end) {
			total += e.Amount
		}
	}

	ratio := total / limitAmount

	status := model.StatusSafe
	switch {
	case ratio >= 1:
		status = model.StatusExceeded
	case ratio >= warnRatio:
		status = model.StatusWarning
	}

	return &model.LimitResult{
		Total:     total,
		Ratio:     ratio,
		Remaining: math.Max(limitAmount-total, 0),
		Status:    status,
	}
}

// AutoLimits holds tier amounts derived from a finance profile.
type AutoLimits struct {
	Daily   float64
	Weekly  float64
	Monthly float64
}

// ComputeAutoLimits derives the tiers from income and fixed expenses:
// disposable spread evenly over the days of the month at the reference date.
func ComputeAutoLimits(monthlyIncome, fixedExpenses float64, at time.Time) AutoLimits {
	disposable := math.Max(0, monthlyIncome-fixedExpenses)
	daily := math.Floor(disposable / float64(dates.DaysInMonth(at)))
	return AutoLimits{
		Daily:   daily,
		Weekly:  daily * 7,
		Monthly: disposable,
	}
}

// RecomputeAuto overwrites all three tiers from the profile when auto mode is
// enabled and both income fields are known. The second return reports whether
// anything was applied.
func RecomputeAuto(state model.LimitsState, profile model.FinanceProfile, now time.Time) (model.LimitsState, bool) {
	if !profile.AutoLimitEnabled || profile.MonthlyIncome == nil || profile.FixedExpenses == nil {
		return state, false
	}

	auto := ComputeAutoLimits(*profile.MonthlyIncome, *profile.FixedExpenses, now)

	state.Daily.Amount = auto.Daily
	state.Daily.Source = model.SourceAuto
	state.Weekly.Amount = auto.Weekly
	state.Weekly.Source = model.SourceAuto
	state.Monthly.Amount = auto.Monthly
	state.Monthly.Source = model.SourceAuto

	return state, true
}

// ApplyChange applies a user edit to one tier and restores the cross-tier
// ordering. An amount edit while auto mode is on is an override: it turns
// auto mode off for the whole state and marks only the touched tier manual.
// Toggling active never affects auto mode or ordering.
func ApplyChange(state model.LimitsState, profile model.FinanceProfile, period model.Period, patch Patch) (model.LimitsState, model.FinanceProfile) {
	if patch.Amount != nil {
		if profile.AutoLimitEnabled {
			profile.AutoLimitEnabled = false
		}

		cfg := state.Get(period)
		cfg.Amount = *patch.Amount
		cfg.Source = model.SourceManual
		state = state.Set(period, cfg)

		state = enforceOrdering(state, period)
	}

	if patch.Active != nil {
		cfg := state.Get(period)
		cfg.Active = *patch.Active
		state = state.Set(period, cfg)
	}

	return state, profile
}

// enforceOrdering pushes the minimal adjustment needed to restore
// daily <= weekly <= monthly after a single-tier amount edit. The cascade is
// one-directional and never longer than two hops; neighbor tiers keep their
// source even when their amount moves.
func enforceOrdering(state model.LimitsState, changed model.Period) model.LimitsState {
	switch changed {
	case model.PeriodDaily:
		if state.Daily.Amount > state.Weekly.Amount {
			state.Weekly.Amount = state.Daily.Amount
		}
		if state.Weekly.Amount > state.Monthly.Amount {
			state.Monthly.Amount = state.Weekly.Amount
		}
	case model.PeriodWeekly:
		if state.Weekly.Amount < state.Daily.Amount {
			state.Daily.Amount = state.Weekly.Amount
		}
		if state.Weekly.Amount > state.Monthly.Amount {
			state.Monthly.Amount = state.Weekly.Amount
		}
	case model.PeriodMonthly:
		if state.Monthly.Amount < state.Weekly.Amount {
			state.Weekly.Amount = state.Monthly.Amount
		}
		if state.Weekly.Amount < state.Daily.Amount {
			state.Daily.Amount = state.Weekly.Amount
		}
	}
	return state
}

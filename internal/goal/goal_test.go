package goal

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

var now = time.Date(2025, 7, 20, 9, 0, 0, 0, time.Local)

func testGoal(target float64, duration, startedDaysAgo int) model.Goal {
	return model.Goal{
		ID:             "g1",
		Title:          "Vacation",
		Type:           model.GoalSavings,
		TargetAmount:   target,
		StartDate:      now.AddDate(0, 0, -startedDaysAgo),
		DurationInDays: duration,
		Status:         model.GoalActive,
	}
}

func boost(amt float64, daysAgo int) model.Expense {
	return model.Expense{
		ID:          "b",
		Amount:      amt,
		Category:    model.CategoryOther,
		Date:        now.AddDate(0, 0, -daysAgo),
		Kind:        model.KindBehavioral,
		IsGoalBoost: true,
		GoalID:      "g1",
		BoostAmount: amt,
	}
}

func TestProjectionPaces(t *testing.T) {
	// 10 of 30 days passed, 200 of 1000 saved: required 40/day over the
	// remaining 20 days, actual 20/day, pace 0.5 -> heavy/high.
	g := testGoal(1000, 30, 10)
	p := Projection(g, []model.Expense{boost(200, 2)}, 0, now)

	if p.TotalSaved != 200 {
		t.Fatalf("totalSaved = %.0f, want 200", p.TotalSaved)
	}
	if p.DaysPassed != 10 || p.DaysRemaining != 20 {
		t.Fatalf("days = %d passed / %d remaining, want 10/20", p.DaysPassed, p.DaysRemaining)
	}
	if p.RequiredDaily != 40 || p.ActualDaily != 20 {
		t.Fatalf("pace = %.0f required / %.0f actual, want 40/20", p.RequiredDaily, p.ActualDaily)
	}
	if p.PaceRatio != 0.5 {
		t.Fatalf("paceRatio = %.2f, want 0.5", p.PaceRatio)
	}
	if p.Feasibility != model.FeasibilityHeavy || p.RiskLevel != model.RiskHigh {
		t.Fatalf("classification = %s/%s, want heavy/high", p.Feasibility, p.RiskLevel)
	}
}

func TestProjectionFeasibilityBands(t *testing.T) {
	tests := []struct {
		name  string
		saved float64
		want  model.Feasibility
	}{
		// 10 of 30 days in on a 1000 target; band edges follow from the
		// saved amount: pace = (saved/10) / ((1000-saved)/20).
		{"ahead of schedule", 400, model.FeasibilityGood},
		{"on the edge", 300, model.FeasibilityTight},
		{"at risk", 150, model.FeasibilityHeavy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGoal(1000, 30, 10)
			p := Projection(g, []model.Expense{boost(tt.saved, 1)}, 0, now)
			if p.Feasibility != tt.want {
				t.Fatalf("feasibility = %s (pace %.2f), want %s", p.Feasibility, p.PaceRatio, tt.want)
			}
		})
	}
}

func TestProjectionExpiredGoalAlwaysMissed(t *testing.T) {
	// Duration elapsed with money still missing: missed regardless of pace.
	g := testGoal(1000, 10, 15)
	p := Projection(g, []model.Expense{boost(900, 1)}, 0, now)

	if p.DaysRemaining != 0 {
		t.Fatalf("daysRemaining = %d, want 0", p.DaysRemaining)
	}
	if !p.WillMissGoal {
		t.Fatal("willMissGoal should be true once time is up with a shortfall")
	}
}

func TestProjectionBaselineShortfall(t *testing.T) {
	// Required 40/day but the user's whole daily capacity is 30: ratio 0.75
	// < 0.9, so the goal is flagged as missed.
	g := testGoal(1000, 30, 10)
	p := Projection(g, []model.Expense{boost(200, 1)}, 30, now)

	if p.BaselineRatio == nil {
		t.Fatal("baselineRatio missing")
	}
	if *p.BaselineRatio != 0.75 {
		t.Fatalf("baselineRatio = %.2f, want 0.75", *p.BaselineRatio)
	}
	if !p.WillMissGoal {
		t.Fatal("willMissGoal should be true when capacity cannot cover the required pace")
	}

	// With plenty of capacity the flag clears.
	p = Projection(g, []model.Expense{boost(200, 1)}, 100, now)
	if p.WillMissGoal {
		t.Fatal("willMissGoal should be false with sufficient capacity")
	}
}

func TestProjectionIgnoresUnlinkedBoosts(t *testing.T) {
	other := boost(300, 1)
	other.GoalID = "other-goal"

	g := testGoal(1000, 30, 10)
	p := Projection(g, []model.Expense{other, boost(50, 1)}, 0, now)
	if p.TotalSaved != 50 {
		t.Fatalf("totalSaved = %.0f, want 50 (other goal's boosts excluded)", p.TotalSaved)
	}
}

func TestSimulatePurity(t *testing.T) {
	g := testGoal(1000, 30, 10)
	base := Projection(g, []model.Expense{boost(200, 1)}, 0, now)

	sim1 := Simulate(base, 25)
	sim2 := Simulate(base, 5)

	if base.ActualDaily != 20 || base.PaceRatio != 0.5 {
		t.Fatalf("base mutated: %+v", base)
	}

	// +25/day: actual 45 against required 40 -> 1.13, good.
	if sim1.ActualDaily != 45 || sim1.PaceRatio != 1.13 {
		t.Fatalf("sim1 = %.0f actual / %.2f pace, want 45/1.13", sim1.ActualDaily, sim1.PaceRatio)
	}
	if sim1.Feasibility != model.FeasibilityGood {
		t.Fatalf("sim1 feasibility = %s, want good", sim1.Feasibility)
	}

	// +5/day: actual 25 against required 40 -> 0.63, below even the
	// simulator's looser 0.7 tight threshold.
	if sim2.ActualDaily != 25 || sim2.Feasibility != model.FeasibilityHeavy {
		t.Fatalf("sim2 = %.0f actual / %s, want 25/heavy", sim2.ActualDaily, sim2.Feasibility)
	}
}

func TestSimulateTightThresholdIsLooser(t *testing.T) {
	// Pace 0.75 is heavy for the live projection but tight for the simulator.
	g := testGoal(1000, 30, 10)
	base := Projection(g, []model.Expense{boost(200, 1)}, 0, now)

	sim := Simulate(base, 10) // actual 30 / required 40 = 0.75
	if sim.Feasibility != model.FeasibilityTight {
		t.Fatalf("simulated feasibility = %s (pace %.2f), want tight", sim.Feasibility, sim.PaceRatio)
	}
}

func TestHealthBands(t *testing.T) {
	// 20 days in with 200 saved: all-time pace 10/day, weekly expectation 70.
	g := testGoal(1000, 60, 20)

	tests := []struct {
		name   string
		recent float64
		want   model.GoalHealth
	}{
		{"excellent", 90, model.HealthExcellent},
		{"good", 65, model.HealthGood},
		{"warning", 45, model.HealthWarning},
		{"bad", 10, model.HealthBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One old contribution outside the window fixes the all-time
			// pace; the recent one lands inside the weekly window.
			expenses := []model.Expense{
				boost(200-tt.recent, 15),
				boost(tt.recent, 2),
			}
			res := Health(g, expenses, model.PeriodWeekly, now)
			if res.Health != tt.want {
				t.Fatalf("health = %s (expected %.0f, actual %.0f), want %s",
					res.Health, res.Expected, res.Actual, tt.want)
			}
		})
	}
}

func TestFromDraft(t *testing.T) {
	g, err := FromDraft(Draft{Type: model.GoalPurchase, TargetAmount: 500, DurationInDays: 60}, now)
	if err != nil {
		t.Fatalf("FromDraft: %v", err)
	}
	if g.ID == "" {
		t.Fatal("goal ID not assigned")
	}
	if g.Title != "Planned Purchase" {
		t.Fatalf("default title = %q, want Planned Purchase", g.Title)
	}
	if g.Status != model.GoalActive {
		t.Fatalf("status = %s, want active", g.Status)
	}
}

func TestFromDraftIncomplete(t *testing.T) {
	drafts := []Draft{
		{TargetAmount: 500, DurationInDays: 60},                 // missing type
		{Type: model.GoalSavings, DurationInDays: 60},           // missing target
		{Type: model.GoalSavings, TargetAmount: 500},            // missing duration
		{Type: model.GoalSavings, TargetAmount: -1, DurationInDays: 60},
	}

	for _, d := range drafts {
		if _, err := FromDraft(d, now); !errors.Is(err, ErrIncompleteDraft) {
			t.Fatalf("FromDraft(%+v) err = %v, want ErrIncompleteDraft", d, err)
		}
	}
}

package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "steady.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testExpense(id string, amount float64, date time.Time) model.Expense {
	return model.Expense{
		ID:       id,
		Title:    "coffee",
		Amount:   amount,
		Category: model.CategoryFood,
		Date:     date,
		Kind:     model.KindBehavioral,
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	s := openTestStore(t)

	date := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)
	e := testExpense("e1", 12.5, date)
	e.IsGoalBoost = true
	e.GoalID = "g1"
	e.BoostAmount = 10

	if err := s.SaveExpense(e); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	got, err := s.GetExpense("e1")
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if got.Title != "coffee" || got.Amount != 12.5 || got.Category != model.CategoryFood {
		t.Fatalf("loaded expense = %+v", got)
	}
	if !got.Date.Equal(date) {
		t.Fatalf("date = %v, want %v", got.Date, date)
	}
	if !got.IsGoalBoost || got.GoalID != "g1" || got.BoostAmount != 10 {
		t.Fatalf("boost fields lost: %+v", got)
	}
}

func TestListExpensesNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	for i, id := range []string{"old", "mid", "new"} {
		if err := s.SaveExpense(testExpense(id, 10, base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("SaveExpense: %v", err)
		}
	}

	expenses, err := s.ListExpenses()
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("got %d expenses, want 3", len(expenses))
	}
	if expenses[0].ID != "new" || expenses[2].ID != "old" {
		t.Fatalf("order = [%s, %s, %s], want newest first",
			expenses[0].ID, expenses[1].ID, expenses[2].ID)
	}
}

func TestDeleteExpense(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveExpense(testExpense("e1", 10, time.Now())); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}
	if err := s.DeleteExpense("e1"); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	count, err := s.ExpenseCount()
	if err != nil {
		t.Fatalf("ExpenseCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d after delete, want 0", count)
	}
}

func TestLimitsDefaultUntilSaved(t *testing.T) {
	s := openTestStore(t)

	limits, err := s.Limits()
	if err != nil {
		t.Fatalf("Limits: %v", err)
	}
	if limits != model.DefaultLimits() {
		t.Fatalf("fresh store limits = %+v, want defaults", limits)
	}

	limits.Daily.Amount = 75
	limits.Daily.Source = model.SourceManual
	if err := s.SaveLimits(limits); err != nil {
		t.Fatalf("SaveLimits: %v", err)
	}

	reloaded, err := s.Limits()
	if err != nil {
		t.Fatalf("Limits after save: %v", err)
	}
	if reloaded.Daily.Amount != 75 {
		t.Fatalf("daily amount = %.0f, want 75", reloaded.Daily.Amount)
	}
}

func TestActivateGoalIsExclusive(t *testing.T) {
	s := openTestStore(t)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	for _, id := range []string{"g1", "g2"} {
		g := model.Goal{
			ID: id, Title: "Trip", Type: model.GoalSavings,
			TargetAmount: 1000, StartDate: start, DurationInDays: 90,
			Status: model.GoalPaused,
		}
		if err := s.SaveGoal(g); err != nil {
			t.Fatalf("SaveGoal: %v", err)
		}
	}

	if err := s.ActivateGoal("g1"); err != nil {
		t.Fatalf("ActivateGoal g1: %v", err)
	}
	if err := s.ActivateGoal("g2"); err != nil {
		t.Fatalf("ActivateGoal g2: %v", err)
	}

	active, err := s.ActiveGoal()
	if err != nil {
		t.Fatalf("ActiveGoal: %v", err)
	}
	if active == nil || active.ID != "g2" {
		t.Fatalf("active goal = %+v, want g2", active)
	}

	g1, err := s.GetGoal("g1")
	if err != nil {
		t.Fatalf("GetGoal g1: %v", err)
	}
	if g1.Status != model.GoalPaused {
		t.Fatalf("g1 status = %s, want paused after g2 activation", g1.Status)
	}

	if err := s.ActivateGoal("missing"); err == nil {
		t.Fatal("activating an unknown goal should fail")
	}
}

func TestAddMilestoneIdempotent(t *testing.T) {
	s := openTestStore(t)

	m := model.AchievedMilestone{
		Milestone:  model.Milestone{ID: "m7", Value: 7, Title: "One Week Strong"},
		AchievedAt: "2025-06-10T12:00:00Z",
	}
	if err := s.AddMilestone(m); err != nil {
		t.Fatalf("AddMilestone: %v", err)
	}
	if err := s.AddMilestone(m); err != nil {
		t.Fatalf("AddMilestone (repeat): %v", err)
	}

	milestones, err := s.Milestones()
	if err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	if len(milestones) != 1 {
		t.Fatalf("got %d milestones, want 1 (repeat unlock ignored)", len(milestones))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := openTestStore(t)

	date := time.Date(2025, 6, 10, 14, 0, 0, 0, time.Local)
	if err := src.SaveExpense(testExpense("e1", 42, date)); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}
	goal := model.Goal{
		ID: "g1", Title: "Vacation", Type: model.GoalSavings,
		TargetAmount: 1000, StartDate: date, DurationInDays: 90,
		Status: model.GoalActive,
	}
	if err := src.SaveGoal(goal); err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}
	income := 3000.0
	if err := src.SaveProfile(model.FinanceProfile{MonthlyIncome: &income, AutoLimitEnabled: true}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := src.SaveLastStreak(4); err != nil {
		t.Fatalf("SaveLastStreak: %v", err)
	}

	var buf bytes.Buffer
	if err := src.Export(&buf, time.Now()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := openTestStore(t)
	if err := dst.SaveExpense(testExpense("stale", 1, date)); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}
	if err := dst.Import(&buf); err != nil {
		t.Fatalf("Import: %v", err)
	}

	expenses, err := dst.ListExpenses()
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Fatalf("imported ledger = %+v, want only e1", expenses)
	}
	if !expenses[0].Date.Equal(date) {
		t.Fatalf("imported date = %v, want %v", expenses[0].Date, date)
	}

	active, err := dst.ActiveGoal()
	if err != nil {
		t.Fatalf("ActiveGoal: %v", err)
	}
	if active == nil || active.ID != "g1" {
		t.Fatalf("imported active goal = %+v, want g1", active)
	}

	profile, err := dst.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.MonthlyIncome == nil || *profile.MonthlyIncome != 3000 || !profile.AutoLimitEnabled {
		t.Fatalf("imported profile = %+v", profile)
	}

	streak, err := dst.LastStreak()
	if err != nil {
		t.Fatalf("LastStreak: %v", err)
	}
	if streak != 4 {
		t.Fatalf("imported lastStreak = %d, want 4", streak)
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveExpense(testExpense("keep", 10, time.Now())); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	err := s.Import(strings.NewReader(`{"version": 99}`))
	if err == nil {
		t.Fatal("import of unknown version should fail")
	}

	count, err := s.ExpenseCount()
	if err != nil {
		t.Fatalf("ExpenseCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, existing data should survive a failed import", count)
	}
}

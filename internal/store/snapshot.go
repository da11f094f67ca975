package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

// snapshotVersion guards the export format. Bump on breaking changes.
const snapshotVersion = 1

// Snapshot is the portable JSON form of everything the store holds.
type Snapshot struct {
	Version    int                       `json:"version"`
	ExportedAt string                    `json:"exportedAt"`
	Expenses   []expenseJSON             `json:"expenses"`
	Goals      []goalJSON                `json:"goals"`
	Limits     model.LimitsState         `json:"limits"`
	Profile    model.FinanceProfile      `json:"financeProfile"`
	Milestones []model.AchievedMilestone `json:"achievedMilestones"`
	LastStreak int                       `json:"lastStreak"`
}

type expenseJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	IsGoalBoost bool    `json:"isGoalBoost,omitempty"`
	GoalID      string  `json:"goalId,omitempty"`
	BoostAmount float64 `json:"boostAmount,omitempty"`
}

type goalJSON struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Type           string  `json:"type"`
	TargetAmount   float64 `json:"targetAmount"`
	StartDate      string  `json:"startDate"`
	DurationInDays int     `json:"durationInDays"`
	Status         string  `json:"status"`
	Category       string  `json:"category,omitempty"`
}

func toExpenseJSON(e model.Expense) expenseJSON {
	return expenseJSON{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Date:        e.Date.Format(time.RFC3339),
		Kind:        string(e.Kind),
		IsGoalBoost: e.IsGoalBoost,
		GoalID:      e.GoalID,
		BoostAmount: e.BoostAmount,
	}
}

func (j expenseJSON) toModel() (model.Expense, error) {
	date, err := time.Parse(time.RFC3339, j.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("expense %s: parsing date %q: %w", j.ID, j.Date, err)
	}
	return model.Expense{
		ID:          j.ID,
		Title:       j.Title,
		Amount:      j.Amount,
		Category:    model.Category(j.Category),
		Date:        date,
		Kind:        model.ExpenseKind(j.Kind),
		IsGoalBoost: j.IsGoalBoost,
		GoalID:      j.GoalID,
		BoostAmount: j.BoostAmount,
	}, nil
}

func toGoalJSON(g model.Goal) goalJSON {
	return goalJSON{
		ID:             g.ID,
		Title:          g.Title,
		Type:           string(g.Type),
		TargetAmount:   g.TargetAmount,
		StartDate:      g.StartDate.Format(time.RFC3339),
		DurationInDays: g.DurationInDays,
		Status:         string(g.Status),
		Category:       string(g.Category),
	}
}

func (j goalJSON) toModel() (model.Goal, error) {
	start, err := time.Parse(time.RFC3339, j.StartDate)
	if err != nil {
		return model.Goal{}, fmt.Errorf("goal %s: parsing start date %q: %w", j.ID, j.StartDate, err)
	}
	return model.Goal{
		ID:             j.ID,
		Title:          j.Title,
		Type:           model.GoalType(j.Type),
		TargetAmount:   j.TargetAmount,
		StartDate:      start,
		DurationInDays: j.DurationInDays,
		Status:         model.GoalStatus(j.Status),
		Category:       model.Category(j.Category),
	}, nil
}

// Export writes the full store contents as indented JSON.
func (s *Store) Export(w io.Writer, now time.Time) error {
	expenses, err := s.ListExpenses()
	if err != nil {
		return err
	}
	goals, err := s.ListGoals()
	if err != nil {
		return err
	}
	limits, err := s.Limits()
	if err != nil {
		return err
	}
	profile, err := s.Profile()
	if err != nil {
		return err
	}
	milestones, err := s.Milestones()
	if err != nil {
		return err
	}
	lastStreak, err := s.LastStreak()
	if err != nil {
		return err
	}

	snap := Snapshot{
		Version:    snapshotVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Expenses:   make([]expenseJSON, 0, len(expenses)),
		Goals:      make([]goalJSON, 0, len(goals)),
		Limits:     limits,
		Profile:    profile,
		Milestones: milestones,
		LastStreak: lastStreak,
	}
	for _, e := range expenses {
		snap.Expenses = append(snap.Expenses, toExpenseJSON(e))
	}
	for _, g := range goals {
		snap.Goals = append(snap.Goals, toGoalJSON(g))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Import replaces the entire store contents with the snapshot read from r.
// All-or-nothing: a malformed snapshot leaves existing data untouched.
func (s *Store) Import(r io.Reader) error {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	expenses := make([]model.Expense, 0, len(snap.Expenses))
	for _, j := range snap.Expenses {
		e, err := j.toModel()
		if err != nil {
			return err
		}
		expenses = append(expenses, e)
	}
	goals := make([]model.Goal, 0, len(snap.Goals))
	for _, j := range snap.Goals {
		g, err := j.toModel()
		if err != nil {
			return err
		}
		goals = append(goals, g)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"expenses", "goals", "app_state"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range expenses {
		isBoost := 0
		if e.IsGoalBoost {
			isBoost = 1
		}
		_, err := tx.Exec(`INSERT INTO expenses
			(id, title, amount, category, date, kind, is_goal_boost, goal_id, boost_amount, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Amount, string(e.Category), e.Date.Format(time.RFC3339),
			string(e.Kind), isBoost, e.GoalID, e.BoostAmount, now)
		if err != nil {
			return fmt.Errorf("importing expense %s: %w", e.ID, err)
		}
	}
	for _, g := range goals {
		_, err := tx.Exec(`INSERT INTO goals
			(id, title, type, target_amount, start_date, duration_days, status, category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Title, string(g.Type), g.TargetAmount,
			g.StartDate.Format(time.RFC3339), g.DurationInDays, string(g.Status), string(g.Category))
		if err != nil {
			return fmt.Errorf("importing goal %s: %w", g.ID, err)
		}
	}

	states := map[string]any{
		stateLimits:     snap.Limits,
		stateProfile:    snap.Profile,
		stateLastStreak: snap.LastStreak,
	}
	if snap.Milestones != nil {
		states[stateMilestones] = snap.Milestones
	}
	for key, v := range states {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding state %s: %w", key, err)
		}
		if _, err := tx.Exec("INSERT INTO app_state (key, value) VALUES (?, ?)", key, string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Package store persists the ledger, goals, and app state in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/steady/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// State keys in the app_state table. Each holds a JSON document.
const (
	stateLimits     = "limits"
	stateProfile    = "finance_profile"
	stateMilestones = "achieved_milestones"
	stateLastStreak = "last_streak"
)

// Store wraps the SQLite database holding all steady data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveExpense inserts or replaces a ledger entry.
func (s *Store) SaveExpense(e model.Expense) error {
	isBoost := 0
	if e.IsGoalBoost {
		isBoost = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO expenses
		(id, title, amount, category, date, kind, is_goal_boost, goal_id, boost_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Amount, string(e.Category), e.Date.Format(time.RFC3339),
		string(e.Kind), isBoost, e.GoalID, e.BoostAmount,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving expense: %w", err)
	}
	return nil
}

// GetExpense returns the entry with the given id, or sql.ErrNoRows.
func (s *Store) GetExpense(id string) (model.Expense, error) {
	row := s.db.QueryRow(`SELECT id, title, amount, category, date, kind,
		is_goal_boost, goal_id, boost_amount FROM expenses WHERE id = ?`, id)
	return scanExpense(row)
}

// ListExpenses returns the whole ledger ordered by date, newest first.
func (s *Store) ListExpenses() ([]model.Expense, error) {
	rows, err := s.db.Query(`SELECT id, title, amount, category, date, kind,
		is_goal_boost, goal_id, boost_amount FROM expenses ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpense removes an entry. Deleting an unknown id is not an error.
func (s *Store) DeleteExpense(id string) error {
	_, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	return err
}

// ExpenseCount returns the number of ledger entries.
func (s *Store) ExpenseCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var e model.Expense
	var category, kind, dateStr string
	var isBoost int
	var goalID sql.NullString
	var boostAmount sql.NullFloat64

	err := row.Scan(&e.ID, &e.Title, &e.Amount, &category, &dateStr, &kind,
		&isBoost, &goalID, &boostAmount)
	if err != nil {
		return model.Expense{}, err
	}

	e.Category = model.Category(category)
	e.Kind = model.ExpenseKind(kind)
	e.IsGoalBoost = isBoost != 0
	e.GoalID = goalID.String
	e.BoostAmount = boostAmount.Float64

	e.Date, err = time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing expense date %q: %w", dateStr, err)
	}
	return e, nil
}

// SaveGoal inserts or replaces a goal.
func (s *Store) SaveGoal(g model.Goal) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals
		(id, title, type, target_amount, start_date, duration_days, status, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, string(g.Type), g.TargetAmount,
		g.StartDate.Format(time.RFC3339), g.DurationInDays, string(g.Status), string(g.Category),
	)
	if err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}
	return nil
}

// GetGoal returns the goal with the given id, or sql.ErrNoRows.
func (s *Store) GetGoal(id string) (model.Goal, error) {
	row := s.db.QueryRow(`SELECT id, title, type, target_amount, start_date,
		duration_days, status, category FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

// ListGoals returns all goals, most recently started first.
func (s *Store) ListGoals() ([]model.Goal, error) {
	rows, err := s.db.Query(`SELECT id, title, type, target_amount, start_date,
		duration_days, status, category FROM goals ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// ActiveGoal returns the single active goal, or nil when none is active.
func (s *Store) ActiveGoal() (*model.Goal, error) {
	row := s.db.QueryRow(`SELECT id, title, type, target_amount, start_date,
		duration_days, status, category FROM goals WHERE status = ? LIMIT 1`,
		string(model.GoalActive))
	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ActivateGoal marks the goal active and pauses any other active goal.
// At most one goal is active at a time.
func (s *Store) ActivateGoal(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec("UPDATE goals SET status = ? WHERE status = ? AND id != ?",
		string(model.GoalPaused), string(model.GoalActive), id)
	if err != nil {
		return err
	}

	res, err := tx.Exec("UPDATE goals SET status = ? WHERE id = ?",
		string(model.GoalActive), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("goal %s not found", id)
	}

	return tx.Commit()
}

// SetGoalStatus updates a goal's lifecycle state without touching others.
func (s *Store) SetGoalStatus(id string, status model.GoalStatus) error {
	res, err := s.db.Exec("UPDATE goals SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

// DeleteGoal removes a goal. Linked boost expenses stay in the ledger.
func (s *Store) DeleteGoal(id string) error {
	_, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	return err
}

func scanGoal(row rowScanner) (model.Goal, error) {
	var g model.Goal
	var goalType, status, startStr string
	var category sql.NullString

	err := row.Scan(&g.ID, &g.Title, &goalType, &g.TargetAmount, &startStr,
		&g.DurationInDays, &status, &category)
	if err != nil {
		return model.Goal{}, err
	}

	g.Type = model.GoalType(goalType)
	g.Status = model.GoalStatus(status)
	g.Category = model.Category(category.String)

	g.StartDate, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing goal start date %q: %w", startStr, err)
	}
	return g, nil
}

// getState unmarshals the JSON document at key into out. Returns false when
// the key has never been written.
func (s *Store) getState(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("decoding state %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) setState(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding state %s: %w", key, err)
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)",
		key, string(data))
	return err
}

// Limits returns the persisted limit tiers, or the defaults before any
// configuration has been saved.
func (s *Store) Limits() (model.LimitsState, error) {
	var limits model.LimitsState
	ok, err := s.getState(stateLimits, &limits)
	if err != nil {
		return model.LimitsState{}, err
	}
	if !ok {
		return model.DefaultLimits(), nil
	}
	return limits, nil
}

// SaveLimits persists the limit tiers.
func (s *Store) SaveLimits(limits model.LimitsState) error {
	return s.setState(stateLimits, limits)
}

// Profile returns the finance profile; zero value when never saved.
func (s *Store) Profile() (model.FinanceProfile, error) {
	var profile model.FinanceProfile
	if _, err := s.getState(stateProfile, &profile); err != nil {
		return model.FinanceProfile{}, err
	}
	return profile, nil
}

// SaveProfile persists the finance profile.
func (s *Store) SaveProfile(p model.FinanceProfile) error {
	return s.setState(stateProfile, p)
}

// Milestones returns every milestone unlocked so far.
func (s *Store) Milestones() ([]model.AchievedMilestone, error) {
	var milestones []model.AchievedMilestone
	if _, err := s.getState(stateMilestones, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

// AddMilestone appends a newly unlocked milestone. Values already unlocked
// are ignored, keeping unlocks idempotent.
func (s *Store) AddMilestone(m model.AchievedMilestone) error {
	milestones, err := s.Milestones()
	if err != nil {
		return err
	}
	for _, have := range milestones {
		if have.Value == m.Value {
			return nil
		}
	}
	return s.setState(stateMilestones, append(milestones, m))
}

// LastStreak returns the streak length observed at the previous status
// computation. Celebration detection compares against it.
func (s *Store) LastStreak() (int, error) {
	var streak int
	if _, err := s.getState(stateLastStreak, &streak); err != nil {
		return 0, err
	}
	return streak, nil
}

// SaveLastStreak records the current streak length for the next comparison.
func (s *Store) SaveLastStreak(streak int) error {
	return s.setState(stateLastStreak, streak)
}

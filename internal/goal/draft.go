package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/steady/internal/model"
)

// ErrIncompleteDraft is returned when a draft is missing a required field.
// Hitting it means the wizard let a bad draft through; the goal must never
// reach the store.
var ErrIncompleteDraft = errors.New("incomplete goal draft")

// Draft is the wizard's in-progress goal before construction.
type Draft struct {
	Type           model.GoalType
	Title          string
	TargetAmount   float64
	DurationInDays int
	Category       model.Category
}

// FromDraft builds an active goal from a completed draft, failing fast when
// type, duration, or target is missing.
func FromDraft(d Draft, now time.Time) (model.Goal, error) {
	if d.Type == "" || d.DurationInDays <= 0 || d.TargetAmount <= 0 {
		return model.Goal{}, ErrIncompleteDraft
	}

	title := d.Title
	if title == "" {
		switch d.Type {
		case model.GoalSavings:
			title = "New Savings Goal"
		case model.GoalPurchase:
			title = "Planned Purchase"
		default:
			title = "Budget Goal"
		}
	}

	return model.Goal{
		ID:             uuid.NewString(),
		Title:          title,
		Type:           d.Type,
		TargetAmount:   d.TargetAmount,
		StartDate:      now,
		DurationInDays: d.DurationInDays,
		Status:         model.GoalActive,
		Category:       d.Category,
	}, nil
}

package streak

import (
	"time"

	"github.com/theirongolddev/steady/internal/model"
)

// Thresholds are the streak-day values that unlock a milestone.
var Thresholds = []int{1, 7, 21, 30, 60, 90}

// Registry maps each threshold to its milestone.
var Registry = map[int]model.Milestone{
	1: {
		ID:          "streak_1",
		Value:       1,
		Title:       "First Step",
		Description: "You completed your first safe day.",
		Emoji:       "🔥",
	},
	7: {
		ID:          "streak_7",
		Value:       7,
		Title:       "One Week Strong",
		Description: "7 days in a row within your limit.",
		Emoji:       "💪",
	},
	21: {
		ID:          "streak_21",
		Value:       21,
		Title:       "Habit Formed",
		Description: "21 day streak achieved.",
		Emoji:       "🧠",
	},
	30: {
		ID:          "streak_30",
		Value:       30,
		Title:       "Monthly Discipline",
		Description: "30 days of consistency.",
		Emoji:       "🏆",
	},
	60: {
		ID:          "streak_60",
		Value:       60,
		Title:       "Unstoppable",
		Description: "60 day streak. Impressive.",
		Emoji:       "🚀",
	},
	90: {
		ID:          "streak_90",
		Value:       90,
		Title:       "Legendary",
		Description: "90 days without breaking discipline.",
		Emoji:       "👑",
	},
}

// IsMilestone reports whether a streak length sits exactly on a threshold.
func IsMilestone(value int) bool {
	_, ok := Registry[value]
	return ok
}

// NextUnlock returns the milestone to unlock for the current streak, or nil
// when the streak is not on a threshold or the milestone was already
// unlocked. Safe to call on every recomputation; unlocking is idempotent as
// long as the caller persists the result.
func NextUnlock(currentStreak int, unlocked []model.AchievedMilestone, now time.Time) *model.AchievedMilestone {
	base, ok := Registry[currentStreak]
	if !ok {
		return nil
	}
	for _, m := range unlocked {
		if m.ID == base.ID {
			return nil
		}
	}
	return &model.AchievedMilestone{
		Milestone:  base,
		AchievedAt: now.Format(time.RFC3339),
	}
}

// CelebrationType distinguishes the two one-time celebration events.
type CelebrationType string

const (
	CelebrationNewStreak CelebrationType = "new_streak"
	CelebrationMilestone CelebrationType = "milestone"
)

// Celebration is a one-time event raised when a streak grows.
type Celebration struct {
	Type  CelebrationType `json:"type"`
	Count int             `json:"count"`
}

// CelebrationFor decides whether growing from prev to current warrants a
// celebration: the very first safe day, or crossing a milestone threshold.
// Returns nil when the streak shrank, stalled, or is zero.
func CelebrationFor(prevStreak, currentStreak int) *Celebration {
	if currentStreak <= 0 || currentStreak <= prevStreak {
		return nil
	}

	if prevStreak == 0 && currentStreak == 1 {
		return &Celebration{Type: CelebrationNewStreak, Count: 1}
	}

	if IsMilestone(currentStreak) {
		return &Celebration{Type: CelebrationMilestone, Count: currentStreak}
	}

	return nil
}

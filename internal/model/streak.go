package model

import "time"

// StreakMetrics is fully recomputed on every call; no streak counter is
// persisted anywhere.
type StreakMetrics struct {
	CurrentStreak   int
	LongestStreak   int
	HasActiveStreak bool
	LastBrokenAt    *time.Time
}

// DayStatus is the four-way display state of a calendar day.
type DayStatus string

const (
	// DayGold marks a day inside the active streak (length >= 2).
	DayGold DayStatus = "gold"
	// DayGreen marks a pass day outside the active streak.
	DayGreen DayStatus = "green"
	// DayBreak marks a past day on which a streak was lost.
	DayBreak DayStatus = "break"
	// DayEmpty marks a future day or one with no data.
	DayEmpty DayStatus = "empty"
)

// DayInfo is the derived per-day state for the consistency calendar.
type DayInfo struct {
	Total    float64
	Limit    float64
	HasEntry bool
	Pass     bool
	Status   DayStatus
}

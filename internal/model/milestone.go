package model

// Milestone is a fixed streak achievement from the registry. Each is unlocked
// at most once per ledger lifetime.
type Milestone struct {
	ID          string `json:"id"`
	Value       int    `json:"value"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// AchievedMilestone is a milestone plus the moment it was unlocked, persisted
// so celebrations stay idempotent across renders.
type AchievedMilestone struct {
	Milestone
	AchievedAt string `json:"achievedAt"` // RFC3339
}

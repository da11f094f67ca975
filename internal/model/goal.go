package model

import "time"

// GoalStatus is the lifecycle state of a savings goal.
// Transitions: active <-> paused -> completed.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
)

// GoalType describes what the user is saving toward.
type GoalType string

const (
	GoalSavings  GoalType = "savings"
	GoalPurchase GoalType = "purchase"
	GoalBudget   GoalType = "budget"
)

// Goal is a savings target over a fixed duration. The saved amount is never
// stored; it is derived from linked goal-boost expenses.
type Goal struct {
	ID             string
	Title          string
	Type           GoalType
	TargetAmount   float64
	StartDate      time.Time
	DurationInDays int
	Status         GoalStatus
	Category       Category
}

// Feasibility classifies whether a goal's required pace is being met.
type Feasibility string

const (
	FeasibilityGood  Feasibility = "good"
	FeasibilityTight Feasibility = "tight"
	FeasibilityHeavy Feasibility = "heavy"
)

// RiskLevel mirrors feasibility for risk-oriented display.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// GoalProjection is the derived on-pace analysis for a goal.
// RequiredDaily and ActualDaily are ceiling-rounded for display.
type GoalProjection struct {
	TotalSaved float64

	DaysPassed    int
	DaysRemaining int
	TotalDays     int

	RequiredDaily float64
	ActualDaily   float64

	// BaselineDaily is the user's disposable-income-per-day capacity,
	// when known. Zero means not supplied.
	BaselineDaily float64
	// BaselineRatio is BaselineDaily / RequiredDaily; nil when no baseline
	// was supplied or RequiredDaily is zero.
	BaselineRatio *float64

	PaceRatio float64

	Feasibility Feasibility
	RiskLevel   RiskLevel

	WillMissGoal bool

	Message string
}

// GoalHealth classifies recent contribution pace against the all-time pace.
type GoalHealth string

const (
	HealthExcellent GoalHealth = "excellent"
	HealthGood      GoalHealth = "good"
	HealthWarning   GoalHealth = "warning"
	HealthBad       GoalHealth = "bad"
)

// GoalHealthResult pairs the health band with the underlying numbers.
type GoalHealthResult struct {
	Health   GoalHealth
	Expected float64
	Actual   float64
}

// Package model defines domain types for steady's expenses, limits, and goals.
package model

import "time"

// ExpenseKind separates discretionary spending from fixed commitments.
type ExpenseKind string

const (
	// KindBehavioral is day-to-day discretionary spend. It counts toward the
	// daily and weekly limit tiers and toward streak eligibility.
	KindBehavioral ExpenseKind = "behavioral"
	// KindStructural is fixed/recurring spend (rent, bills). It counts only
	// toward the monthly tier.
	KindStructural ExpenseKind = "structural"
)

// Category classifies an expense for grouping and insights.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryHealth        Category = "health"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single ledger entry. Identity is ID; entries are immutable
// except through an explicit update.
type Expense struct {
	ID       string
	Title    string
	Amount   float64
	Category Category
	Date     time.Time
	Kind     ExpenseKind

	// Goal boost linkage. When IsGoalBoost is set the expense also contributes
	// BoostAmount (Amount when zero) to the linked goal's saved total.
	IsGoalBoost bool
	GoalID      string
	BoostAmount float64
}

// EffectiveBoost returns the amount this expense contributes to its linked
// goal: BoostAmount when set, otherwise the expense amount itself.
func (e Expense) EffectiveBoost() float64 {
	if !e.IsGoalBoost {
		return 0
	}
	if e.BoostAmount > 0 {
		return e.BoostAmount
	}
	return e.Amount
}

package model

// InsightType identifies a candidate insight signal.
type InsightType string

const (
	InsightMonthlyChange      InsightType = "monthly_change"
	InsightTopCategory        InsightType = "top_category"
	InsightWeeklyAverage      InsightType = "weekly_average"
	InsightWeekendSpike       InsightType = "behavioral_weekend_spike"
	InsightOverLimitFrequency InsightType = "behavioral_over_limit_frequency"
	InsightExpensiveWeekday   InsightType = "behavioral_expensive_weekday"
	InsightInconsistentDays   InsightType = "behavioral_inconsistent_days"
)

// InsightTone colors how an insight should be presented.
type InsightTone string

const (
	TonePositive InsightTone = "positive"
	ToneNegative InsightTone = "negative"
	ToneNeutral  InsightTone = "neutral"
)

// InsightItem is a display-ready insight. Ephemeral: produced per render,
// never persisted.
type InsightItem struct {
	Type        InsightType
	Title       string
	Description string
	Tone        InsightTone
}

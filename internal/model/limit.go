package model

// Period is one of the three nested spending-limit tiers.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods lists the tiers in nesting order, smallest first.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// ValidPeriod reports whether p names a known tier.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// LimitSource records how a tier's amount was last set.
type LimitSource string

const (
	SourceManual LimitSource = "manual"
	SourceAuto   LimitSource = "auto"
)

// LimitConfig is the configuration of a single tier.
type LimitConfig struct {
	Period Period      `json:"period"`
	Amount float64     `json:"amount"`
	Active bool        `json:"active"`
	Source LimitSource `json:"source"`
}

// LimitsState holds exactly one LimitConfig per tier.
// Invariant after every mutation: Daily.Amount <= Weekly.Amount <= Monthly.Amount.
type LimitsState struct {
	Daily   LimitConfig `json:"daily"`
	Weekly  LimitConfig `json:"weekly"`
	Monthly LimitConfig `json:"monthly"`
}

// Get returns the tier config for the given period.
func (s LimitsState) Get(p Period) LimitConfig {
	switch p {
	case PeriodDaily:
		return s.Daily
	case PeriodWeekly:
		return s.Weekly
	case PeriodMonthly:
		return s.Monthly
	}
	return LimitConfig{}
}

// Set returns a copy of the state with the given tier replaced.
func (s LimitsState) Set(p Period, cfg LimitConfig) LimitsState {
	switch p {
	case PeriodDaily:
		s.Daily = cfg
	case PeriodWeekly:
		s.Weekly = cfg
	case PeriodMonthly:
		s.Monthly = cfg
	}
	return s
}

// Ordered reports whether the cross-tier ordering invariant holds.
func (s LimitsState) Ordered() bool {
	return s.Daily.Amount <= s.Weekly.Amount && s.Weekly.Amount <= s.Monthly.Amount
}

// DefaultLimits returns the manual starting limits used before any
// configuration: 100/500/2000, all active.
func DefaultLimits() LimitsState {
	return LimitsState{
		Daily:   LimitConfig{Period: PeriodDaily, Amount: 100, Active: true, Source: SourceManual},
		Weekly:  LimitConfig{Period: PeriodWeekly, Amount: 500, Active: true, Source: SourceManual},
		Monthly: LimitConfig{Period: PeriodMonthly, Amount: 2000, Active: true, Source: SourceManual},
	}
}

// LimitStatus is the tri-state classification of spend against a limit.
type LimitStatus string

const (
	StatusSafe     LimitStatus = "safe"
	StatusWarning  LimitStatus = "warning"
	StatusExceeded LimitStatus = "exceeded"
)

// LimitResult reports period spend against a limit amount.
type LimitResult struct {
	Total     float64
	Ratio     float64
	Remaining float64
	Status    LimitStatus
}

// FinanceProfile drives automatic limit derivation. Nil fields mean the user
// has not provided the value yet.
type FinanceProfile struct {
	MonthlyIncome    *float64 `json:"monthlyIncome"`
	FixedExpenses    *float64 `json:"fixedExpenses"`
	AutoLimitEnabled bool     `json:"autoLimitEnabled"`
}

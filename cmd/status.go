package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/goal"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"
	"github.com/theirongolddev/steady/internal/streak"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's standing: limits, streak, and goal",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// limitStatus classifies period spend against a limit amount.
func limitStatus(expenses []model.Expense, period model.Period, amount float64, now time.Time) *model.LimitResult {
	return limits.Status(expenses, period, amount, now)
}

// syncStreakState recomputes the streak, persists any newly crossed milestone,
// and records the streak length for the next comparison. Returns the
// celebration to announce, if any.
func syncStreakState(st *store.Store, now time.Time) error {
	_, err := syncStreakCelebration(st, now)
	return err
}

func syncStreakCelebration(st *store.Store, now time.Time) (*streak.Celebration, error) {
	dailyLimit, err := activeDailyLimit(st)
	if err != nil {
		return nil, err
	}
	if dailyLimit <= 0 {
		return nil, nil
	}

	expenses, err := st.ListExpenses()
	if err != nil {
		return nil, err
	}

	metrics := streak.Calculate(expenses, dailyLimit, now)

	unlocked, err := st.Milestones()
	if err != nil {
		return nil, err
	}
	if m := streak.NextUnlock(metrics.CurrentStreak, unlocked, now); m != nil {
		if err := st.AddMilestone(*m); err != nil {
			return nil, err
		}
	}

	prev, err := st.LastStreak()
	if err != nil {
		return nil, err
	}
	if err := st.SaveLastStreak(metrics.CurrentStreak); err != nil {
		return nil, err
	}

	return streak.CelebrationFor(prev, metrics.CurrentStreak), nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		now := nowLocal()
		symbol := cfg.General.Currency

		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}
		limitsState, err := st.Limits()
		if err != nil {
			return err
		}

		celebration, err := syncStreakCelebration(st, now)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("STEADY"))
		fmt.Println()

		labels := map[model.Period]string{
			model.PeriodDaily:   "Today",
			model.PeriodWeekly:  "Week",
			model.PeriodMonthly: "Month",
		}
		for _, period := range model.Periods {
			tier := limitsState.Get(period)
			if !tier.Active {
				continue
			}
			res := limits.Status(expenses, period, tier.Amount, now)
			if res == nil {
				continue
			}
			fmt.Println(cli.RenderLimitBar(labels[period], *res, tier.Amount, symbol, 20))
		}
		fmt.Println()

		if limitsState.Daily.Active && limitsState.Daily.Amount > 0 {
			metrics := streak.Calculate(expenses, limitsState.Daily.Amount, now)
			if metrics.HasActiveStreak {
				fmt.Printf("  Streak: %s  (longest %d)\n",
					cli.FormatStreak(metrics.CurrentStreak), metrics.LongestStreak)
			} else {
				fmt.Printf("  No active streak. Longest so far: %d days.\n", metrics.LongestStreak)
			}
		}

		if celebration != nil {
			switch celebration.Type {
			case streak.CelebrationNewStreak:
				fmt.Println("  🔥 New streak started!")
			case streak.CelebrationMilestone:
				if m, ok := streak.Registry[celebration.Count]; ok {
					fmt.Printf("  %s %s — %s\n", m.Emoji, m.Title, m.Description)
				}
			}
		}

		active, err := st.ActiveGoal()
		if err != nil {
			return err
		}
		if active != nil {
			baseline := dailyBaseline(st, now)
			p := goal.Projection(*active, expenses, baseline, now)
			fmt.Printf("\n  Goal: %s — %s of %s saved, %d days left (%s)\n",
				active.Title,
				cli.FormatMoney(symbol, p.TotalSaved),
				cli.FormatMoney(symbol, active.TargetAmount),
				p.DaysRemaining,
				p.Feasibility,
			)
		}

		if trend := recentTrend(expenses, now, 14); trend != "" {
			fmt.Printf("\n  Last 14 days: %s\n", trend)
		}
		fmt.Println()

		return nil
	})
}

// dailyBaseline derives disposable capacity per day from the finance profile.
// Zero when the profile is incomplete.
func dailyBaseline(st *store.Store, now time.Time) float64 {
	profile, err := st.Profile()
	if err != nil || profile.MonthlyIncome == nil || profile.FixedExpenses == nil {
		return 0
	}
	auto := limits.ComputeAutoLimits(*profile.MonthlyIncome, *profile.FixedExpenses, now)
	return auto.Daily
}

// recentTrend renders a sparkline of behavioral day totals over the last n days.
func recentTrend(expenses []model.Expense, now time.Time, n int) string {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.Kind != model.KindBehavioral {
			continue
		}
		totals[dates.DayKey(e.Date)] += e.Amount
	}
	if len(totals) == 0 {
		return ""
	}

	values := make([]float64, 0, n)
	start := dates.StartOfDay(now).AddDate(0, 0, -(n - 1))
	for d := 0; d < n; d++ {
		values = append(values, totals[dates.DayKey(start.AddDate(0, 0, d))])
	}
	return cli.RenderSparkline(values)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagAddCategory    string
	flagAddDate        string
	flagAddStructural  bool
	flagAddGoalBoost   string
	flagAddBoostAmount float64
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [title]",
	Short: "Record an expense",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "other", "Category (food, health, transport, entertainment, shopping, other)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Backdate the expense (YYYY-MM-DD, default today)")
	addCmd.Flags().BoolVar(&flagAddStructural, "structural", false, "Mark as fixed/recurring spend (counts toward the monthly tier only)")
	addCmd.Flags().StringVar(&flagAddGoalBoost, "boost", "", "Link to a goal as a contribution (goal id, or 'active')")
	addCmd.Flags().Float64Var(&flagAddBoostAmount, "boost-amount", 0, "Contribution amount when it differs from the expense amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	title := ""
	if len(args) > 1 {
		title = args[1]
	}

	category := model.Category(strings.ToLower(flagAddCategory))
	if !model.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", flagAddCategory)
	}

	date := nowLocal()
	if flagAddDate != "" {
		day, err := dates.ParseDayKey(flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", flagAddDate, err)
		}
		date = day
	}

	kind := model.KindBehavioral
	if flagAddStructural {
		kind = model.KindStructural
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		e := model.Expense{
			ID:       uuid.NewString(),
			Title:    title,
			Amount:   amount,
			Category: category,
			Date:     date,
			Kind:     kind,
		}

		if flagAddGoalBoost != "" {
			goalID := flagAddGoalBoost
			if goalID == "active" {
				active, err := st.ActiveGoal()
				if err != nil {
					return err
				}
				if active == nil {
					return fmt.Errorf("no active goal to boost")
				}
				goalID = active.ID
			} else if _, err := st.GetGoal(goalID); err != nil {
				return fmt.Errorf("goal %s not found", goalID)
			}
			e.IsGoalBoost = true
			e.GoalID = goalID
			e.BoostAmount = flagAddBoostAmount
		}

		if err := st.SaveExpense(e); err != nil {
			return err
		}

		if err := syncStreakState(st, nowLocal()); err != nil {
			return err
		}

		if !flagQuiet {
			symbol := cfg.General.Currency
			fmt.Printf("  Added %s (%s) on %s\n",
				cli.FormatMoney(symbol, amount), category, cli.FormatDate(date))
			printDailyStanding(st, symbol, nowLocal())
		}
		return nil
	})
}

// printDailyStanding shows today's spend against the daily tier after a write.
func printDailyStanding(st *store.Store, symbol string, now time.Time) {
	limits, err := st.Limits()
	if err != nil || !limits.Daily.Active {
		return
	}
	expenses, err := st.ListExpenses()
	if err != nil {
		return
	}
	res := limitStatus(expenses, model.PeriodDaily, limits.Daily.Amount, now)
	if res == nil {
		return
	}
	style := cli.StatusStyle(res.Status)
	fmt.Printf("  Today: %s of %s  %s\n",
		cli.FormatMoney(symbol, res.Total),
		cli.FormatMoney(symbol, limits.Daily.Amount),
		style.Render(cli.FormatPercent(res.Ratio)),
	)
}

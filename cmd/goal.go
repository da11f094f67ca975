package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/goal"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show the active goal's projection",
	RunE:  runGoalShow,
}

var goalNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a goal with the interactive wizard",
	RunE:  runGoalNew,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goals",
	RunE:  runGoalList,
}

var goalSimulateCmd = &cobra.Command{
	Use:   "simulate <extra-per-day>",
	Short: "Project the active goal with extra daily savings",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalSimulate,
}

var goalPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the active goal",
	RunE:  setGoalStatusCmd(model.GoalPaused),
}

var goalResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a paused goal (pauses any other active goal)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalResume,
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark the active goal completed",
	RunE:  setGoalStatusCmd(model.GoalCompleted),
}

func init() {
	goalCmd.AddCommand(goalNewCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalSimulateCmd)
	goalCmd.AddCommand(goalPauseCmd)
	goalCmd.AddCommand(goalResumeCmd)
	goalCmd.AddCommand(goalCompleteCmd)
	rootCmd.AddCommand(goalCmd)
}

func requireActiveGoal(st *store.Store) (model.Goal, error) {
	active, err := st.ActiveGoal()
	if err != nil {
		return model.Goal{}, err
	}
	if active == nil {
		return model.Goal{}, fmt.Errorf("no active goal; create one with `steady goal new`")
	}
	return *active, nil
}

func runGoalShow(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		g, err := requireActiveGoal(st)
		if err != nil {
			return err
		}
		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}

		now := nowLocal()
		p := goal.Projection(g, expenses, dailyBaseline(st, now), now)
		symbol := cfg.General.Currency

		fmt.Println()
		fmt.Println(cli.RenderTitle(g.Title))
		fmt.Println()
		fmt.Printf("  Saved:     %s of %s\n",
			cli.FormatMoney(symbol, p.TotalSaved),
			cli.FormatMoney(symbol, g.TargetAmount))
		fmt.Printf("  Timeline:  day %d of %d (%d remaining)\n",
			p.DaysPassed, p.TotalDays, p.DaysRemaining)
		fmt.Printf("  Pace:      %s/day saved, %s/day required (ratio %.2f)\n",
			cli.FormatMoney(symbol, p.ActualDaily),
			cli.FormatMoney(symbol, p.RequiredDaily),
			p.PaceRatio)
		if p.BaselineRatio != nil {
			fmt.Printf("  Capacity:  %s/day disposable covers %s of the required pace\n",
				cli.FormatMoney(symbol, p.BaselineDaily),
				cli.FormatPercent(*p.BaselineRatio))
		}

		style := cli.StatusStyle(model.StatusSafe)
		switch p.Feasibility {
		case model.FeasibilityTight:
			style = cli.StatusStyle(model.StatusWarning)
		case model.FeasibilityHeavy:
			style = cli.StatusStyle(model.StatusExceeded)
		}
		fmt.Printf("\n  %s\n", style.Render(p.Message))
		if p.WillMissGoal {
			fmt.Printf("  %s\n", cli.StatusStyle(model.StatusExceeded).Render("On current numbers this goal will be missed."))
		}

		for _, period := range []model.Period{model.PeriodWeekly, model.PeriodMonthly} {
			h := goal.Health(g, expenses, period, now)
			fmt.Printf("  %s health: %s (%s saved vs %s expected)\n",
				period, h.Health,
				cli.FormatMoney(symbol, h.Actual),
				cli.FormatMoney(symbol, h.Expected))
		}
		fmt.Println()
		return nil
	})
}

func runGoalNew(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		var (
			draft       goal.Draft
			targetStr   string
			durationStr string
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[model.GoalType]().
					Title("What kind of goal?").
					Options(
						huh.NewOption("Savings", model.GoalSavings),
						huh.NewOption("Purchase", model.GoalPurchase),
						huh.NewOption("Budget", model.GoalBudget),
					).
					Value(&draft.Type),
				huh.NewInput().
					Title("Title").
					Placeholder("leave blank for a default").
					Value(&draft.Title),
				huh.NewInput().
					Title("Target amount").
					Validate(validatePositiveNumber).
					Value(&targetStr),
				huh.NewInput().
					Title("Duration in days").
					Validate(validatePositiveInt).
					Value(&durationStr),
				huh.NewSelect[model.Category]().
					Title("Category").
					Options(categoryOptions()...).
					Value(&draft.Category),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		draft.TargetAmount, _ = strconv.ParseFloat(targetStr, 64)
		draft.DurationInDays, _ = strconv.Atoi(durationStr)

		g, err := goal.FromDraft(draft, nowLocal())
		if err != nil {
			return err
		}

		if err := st.SaveGoal(g); err != nil {
			return err
		}
		// Creation activates the new goal and pauses any previous one.
		if err := st.ActivateGoal(g.ID); err != nil {
			return err
		}

		fmt.Printf("  Goal %q created: %s over %d days.\n",
			g.Title, cli.FormatMoney(cfg.General.Currency, g.TargetAmount), g.DurationInDays)
		return nil
	})
}

func categoryOptions() []huh.Option[model.Category] {
	opts := make([]huh.Option[model.Category], 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, huh.NewOption(string(c), c))
	}
	return opts
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		goals, err := st.ListGoals()
		if err != nil {
			return err
		}
		if len(goals) == 0 {
			fmt.Println("  No goals yet. Create one with `steady goal new`.")
			return nil
		}

		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}

		symbol := cfg.General.Currency
		rows := make([][]string, 0, len(goals))
		for _, g := range goals {
			rows = append(rows, []string{
				g.Title,
				string(g.Type),
				cli.FormatMoney(symbol, goal.TotalSaved(g, expenses)),
				cli.FormatMoney(symbol, g.TargetAmount),
				string(g.Status),
				shortID(g.ID),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Goal", "Type", "Saved", "Target", "Status", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}

func runGoalSimulate(_ *cobra.Command, args []string) error {
	extra, err := strconv.ParseFloat(args[0], 64)
	if err != nil || extra < 0 {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		g, err := requireActiveGoal(st)
		if err != nil {
			return err
		}
		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}

		now := nowLocal()
		base := goal.Projection(g, expenses, dailyBaseline(st, now), now)
		sim := goal.Simulate(base, extra)

		symbol := cfg.General.Currency
		fmt.Println()
		fmt.Printf("  Now:            %s/day, pace %.2f (%s)\n",
			cli.FormatMoney(symbol, base.ActualDaily), base.PaceRatio, base.Feasibility)
		fmt.Printf("  With +%s/day: %s/day, pace %.2f (%s)\n",
			cli.FormatMoney(symbol, extra),
			cli.FormatMoney(symbol, sim.ActualDaily), sim.PaceRatio, sim.Feasibility)
		fmt.Printf("\n  %s\n\n", sim.Message)
		return nil
	})
}

func setGoalStatusCmd(status model.GoalStatus) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return withStore(func(cfg config.Config, st *store.Store) error {
			g, err := requireActiveGoal(st)
			if err != nil {
				return err
			}
			if err := st.SetGoalStatus(g.ID, status); err != nil {
				return err
			}
			fmt.Printf("  Goal %q is now %s.\n", g.Title, status)
			return nil
		})
	}
}

func runGoalResume(_ *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		goals, err := st.ListGoals()
		if err != nil {
			return err
		}
		var target *model.Goal
		for i := range goals {
			if goals[i].ID == args[0] || (len(args[0]) >= 4 && len(goals[i].ID) >= len(args[0]) && goals[i].ID[:len(args[0])] == args[0]) {
				target = &goals[i]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("goal %q not found", args[0])
		}
		if target.Status == model.GoalCompleted {
			return fmt.Errorf("goal %q is completed and cannot be resumed", target.Title)
		}
		if err := st.ActivateGoal(target.ID); err != nil {
			return err
		}
		fmt.Printf("  Goal %q is now active.\n", target.Title)
		return nil
	})
}

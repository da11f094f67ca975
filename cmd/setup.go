package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		currency   = cfg.General.Currency
		incomeStr  string
		fixedStr   string
		autoLimits = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&currency),
			huh.NewInput().
				Title("Monthly income").
				Description("Leave blank to skip auto limits for now.").
				Validate(validateOptionalNumber).
				Value(&incomeStr),
			huh.NewInput().
				Title("Fixed monthly expenses").
				Description("Rent, bills, subscriptions.").
				Validate(validateOptionalNumber).
				Value(&fixedStr),
			huh.NewConfirm().
				Title("Derive spending limits from your income?").
				Value(&autoLimits),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if currency != "" {
		cfg.General.Currency = currency
	}
	cfg.General.FirstRunDone = true
	if err := config.Save(cfg); err != nil {
		return err
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		if incomeStr != "" {
			v, _ := strconv.ParseFloat(incomeStr, 64)
			profile.MonthlyIncome = &v
		}
		if fixedStr != "" {
			v, _ := strconv.ParseFloat(fixedStr, 64)
			profile.FixedExpenses = &v
		}
		profile.AutoLimitEnabled = autoLimits && profile.MonthlyIncome != nil && profile.FixedExpenses != nil

		if err := st.SaveProfile(profile); err != nil {
			return err
		}

		state, err := st.Limits()
		if err != nil {
			return err
		}
		state, applied := limits.RecomputeAuto(state, profile, nowLocal())
		if applied {
			if err := st.SaveLimits(state); err != nil {
				return err
			}
		}

		fmt.Println()
		fmt.Printf("  Saved to %s\n", config.ConfigPath())
		if applied {
			symbol := cfg.General.Currency
			fmt.Printf("  Limits set to %s / %s / %s (daily / weekly / monthly)\n",
				cli.FormatMoney(symbol, state.Get(model.PeriodDaily).Amount),
				cli.FormatMoney(symbol, state.Get(model.PeriodWeekly).Amount),
				cli.FormatMoney(symbol, state.Get(model.PeriodMonthly).Amount),
			)
		} else {
			fmt.Println("  Default limits are in place; adjust with `steady limits set`.")
		}
		fmt.Println("  Run `steady setup` anytime to reconfigure.")
		fmt.Println()
		return nil
	})
}

func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number or leave blank")
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagProfileIncome float64
	flagProfileFixed  float64
	flagProfileAuto   bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the finance profile behind auto limits",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update income, fixed expenses, or auto-limit mode",
	RunE:  runProfileSet,
}

func init() {
	profileSetCmd.Flags().Float64Var(&flagProfileIncome, "income", 0, "Monthly income")
	profileSetCmd.Flags().Float64Var(&flagProfileFixed, "fixed", 0, "Fixed monthly expenses (rent, bills)")
	profileSetCmd.Flags().BoolVar(&flagProfileAuto, "auto", false, "Derive the limit tiers from this profile")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		symbol := cfg.General.Currency
		format := func(v *float64) string {
			if v == nil {
				return "not set"
			}
			return cli.FormatMoney(symbol, *v)
		}

		auto := "off"
		if profile.AutoLimitEnabled {
			auto = "on"
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Finance Profile",
			Headers: []string{"Field", "Value"},
			Rows: [][]string{
				{"Monthly income", format(profile.MonthlyIncome)},
				{"Fixed expenses", format(profile.FixedExpenses)},
				{"Auto limits", auto},
			},
		}))

		if profile.MonthlyIncome != nil && profile.FixedExpenses != nil {
			derived := limits.ComputeAutoLimits(*profile.MonthlyIncome, *profile.FixedExpenses, nowLocal())
			fmt.Printf("  Derived tiers: %s / %s / %s (daily / weekly / monthly)\n",
				cli.FormatMoney(symbol, derived.Daily),
				cli.FormatMoney(symbol, derived.Weekly),
				cli.FormatMoney(symbol, derived.Monthly),
			)
		}
		fmt.Println()
		return nil
	})
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("income") {
			if flagProfileIncome < 0 {
				return fmt.Errorf("income cannot be negative")
			}
			v := flagProfileIncome
			profile.MonthlyIncome = &v
		}
		if cmd.Flags().Changed("fixed") {
			if flagProfileFixed < 0 {
				return fmt.Errorf("fixed expenses cannot be negative")
			}
			v := flagProfileFixed
			profile.FixedExpenses = &v
		}
		if cmd.Flags().Changed("auto") {
			profile.AutoLimitEnabled = flagProfileAuto
		}

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

		if !flagQuiet {
			fmt.Println("  Profile saved.")
			if applied {
				symbol := cfg.General.Currency
				fmt.Printf("  Auto limits applied: %s / %s / %s\n",
					cli.FormatMoney(symbol, state.Daily.Amount),
					cli.FormatMoney(symbol, state.Weekly.Amount),
					cli.FormatMoney(symbol, state.Monthly.Amount),
				)
			}
		}
		return nil
	})
}

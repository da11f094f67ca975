package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/limits"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the spending limit tiers",
	RunE:  runLimitsShow,
}

var limitsSetCmd = &cobra.Command{
	Use:   "set <daily|weekly|monthly> <amount>",
	Short: "Set a tier's limit amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runLimitsSet,
}

var limitsToggleCmd = &cobra.Command{
	Use:   "toggle <daily|weekly|monthly>",
	Short: "Enable or disable a tier",
	Args:  cobra.ExactArgs(1),
	RunE:  runLimitsToggle,
}

func init() {
	limitsCmd.AddCommand(limitsSetCmd)
	limitsCmd.AddCommand(limitsToggleCmd)
	rootCmd.AddCommand(limitsCmd)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parsePeriod(s string) (model.Period, error) {
	p := model.Period(strings.ToLower(s))
	if !model.ValidPeriod(p) {
		return "", fmt.Errorf("unknown period %q (want daily, weekly, or monthly)", s)
	}
	return p, nil
}

func runLimitsShow(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		state, err := st.Limits()
		if err != nil {
			return err
		}
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		symbol := cfg.General.Currency
		rows := make([][]string, 0, 3)
		for _, period := range model.Periods {
			tier := state.Get(period)
			active := "on"
			if !tier.Active {
				active = "off"
			}
			rows = append(rows, []string{
				string(period),
				cli.FormatMoney(symbol, tier.Amount),
				string(tier.Source),
				active,
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Spending Limits",
			Headers: []string{"Tier", "Amount", "Source", "Active"},
			Rows:    rows,
		}))
		if profile.AutoLimitEnabled {
			fmt.Println("  Auto limits are on: tiers follow your finance profile.")
		}
		fmt.Println()
		return nil
	})
}

func runLimitsSet(_ *cobra.Command, args []string) error {
	period, err := parsePeriod(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		state, err := st.Limits()
		if err != nil {
			return err
		}
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		wasAuto := profile.AutoLimitEnabled
		state, profile = limits.ApplyChange(state, profile, period, limits.Patch{Amount: &amount})

		if err := st.SaveLimits(state); err != nil {
			return err
		}
		if err := st.SaveProfile(profile); err != nil {
			return err
		}

		if !flagQuiet {
			symbol := cfg.General.Currency
			fmt.Printf("  %s limit set to %s\n", titleCase(string(period)),
				cli.FormatMoney(symbol, amount))
			if wasAuto {
				fmt.Println("  Auto limits turned off; this tier is now manual.")
			}
		}
		return nil
	})
}

func runLimitsToggle(_ *cobra.Command, args []string) error {
	period, err := parsePeriod(args[0])
	if err != nil {
		return err
	}

	return withStore(func(cfg config.Config, st *store.Store) error {
		state, err := st.Limits()
		if err != nil {
			return err
		}
		profile, err := st.Profile()
		if err != nil {
			return err
		}

		next := !state.Get(period).Active
		state, profile = limits.ApplyChange(state, profile, period, limits.Patch{Active: &next})

		if err := st.SaveLimits(state); err != nil {
			return err
		}
		if err := st.SaveProfile(profile); err != nil {
			return err
		}

		if !flagQuiet {
			verb := "disabled"
			if next {
				verb = "enabled"
			}
			fmt.Printf("  %s tier %s\n", titleCase(string(period)), verb)
		}
		return nil
	})
}

package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/consistency"
	"github.com/theirongolddev/steady/internal/store"
	"github.com/theirongolddev/steady/internal/streak"

	"github.com/spf13/cobra"
)

var flagCalendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the monthly consistency calendar",
	RunE:  runCalendar,
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show streak metrics and unlocked milestones",
	RunE:  runStreak,
}

func init() {
	calendarCmd.Flags().StringVarP(&flagCalendarMonth, "month", "m", "", "Month to show (YYYY-MM, default current)")
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(streakCmd)
}

func runCalendar(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		now := nowLocal()
		month := now
		if flagCalendarMonth != "" {
			var err error
			month, err = time.ParseInLocation("2006-01", flagCalendarMonth, time.Local)
			if err != nil {
				return fmt.Errorf("invalid month %q (want YYYY-MM)", flagCalendarMonth)
			}
		}

		dailyLimit, err := activeDailyLimit(st)
		if err != nil {
			return err
		}
		if dailyLimit <= 0 {
			fmt.Println("  The daily tier is off; the calendar needs a daily limit.")
			return nil
		}

		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}

		infos := consistency.BuildDayMap(expenses, dailyLimit, month, now)
		grid := consistency.MonthGrid(month)

		fmt.Println()
		fmt.Print(cli.RenderCalendar(month, grid, infos))
		fmt.Println()
		return nil
	})
}

func runStreak(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		now := nowLocal()

		dailyLimit, err := activeDailyLimit(st)
		if err != nil {
			return err
		}
		if dailyLimit <= 0 {
			fmt.Println("  The daily tier is off; streaks need a daily limit.")
			return nil
		}

		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}
		metrics := streak.Calculate(expenses, dailyLimit, now)

		if err := syncStreakState(st, now); err != nil {
			return err
		}

		fmt.Println()
		if metrics.HasActiveStreak {
			fmt.Printf("  Current streak: %s\n", cli.FormatStreak(metrics.CurrentStreak))
		} else {
			fmt.Println("  No active streak.")
			if metrics.LastBrokenAt != nil {
				fmt.Printf("  Last broken on %s\n", cli.FormatDate(*metrics.LastBrokenAt))
			}
		}
		fmt.Printf("  Longest streak: %d days\n", metrics.LongestStreak)

		unlocked, err := st.Milestones()
		if err != nil {
			return err
		}

		fmt.Println()
		rows := make([][]string, 0, len(streak.Thresholds))
		for _, value := range streak.Thresholds {
			m := streak.Registry[value]
			status := "locked"
			for _, a := range unlocked {
				if a.Value == value {
					status = fmt.Sprintf("unlocked %s", a.AchievedAt[:10])
					break
				}
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s %s", m.Emoji, m.Title),
				fmt.Sprintf("%d days", m.Value),
				status,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Milestones",
			Headers: []string{"Milestone", "Threshold", "Status"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	})
}

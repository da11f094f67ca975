package cmd

import (
	"fmt"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/insight"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show spending insights",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}
		dailyLimit, err := activeDailyLimit(st)
		if err != nil {
			return err
		}

		items := insight.Select(expenses, dailyLimit)
		if len(items) == 0 {
			fmt.Println("  Not enough data for insights yet. Keep logging expenses.")
			return nil
		}

		fmt.Println()
		for _, item := range items {
			style := cli.ToneStyle(item.Tone)
			fmt.Printf("  %s\n", style.Render("● "+item.Title))
			fmt.Printf("    %s\n\n", item.Description)
		}
		return nil
	})
}

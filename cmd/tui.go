package cmd

import (
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/store"
	"github.com/theirongolddev/steady/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		return tui.Run(cfg, st)
	})
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Configuration",
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Config file", config.ConfigPath()},
			{"Database", config.DBPath(cfg)},
			{"Currency", cfg.General.Currency},
			{"Theme", cfg.Appearance.Theme},
		},
	}))
	if !config.Exists() {
		fmt.Println("  No config file yet; showing defaults. Run `steady setup` to create one.")
	}
	fmt.Println()
	return nil
}

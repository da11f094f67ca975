package cmd

import (
	"os"
	"time"

	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "steady",
	Short: "Personal budget and spending-streak tracker",
	Long:  "Track daily spending against nested limits, build safe-spending streaks, and project savings goals.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfig reads the config file and applies the --data-dir override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg, nil
}

// withStore is the shared open/close path used by all commands.
func withStore(fn func(cfg config.Config, st *store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	return fn(cfg, st)
}

// activeDailyLimit returns the daily tier amount when that tier is active,
// zero otherwise. Streaks and the calendar need it constantly.
func activeDailyLimit(st *store.Store) (float64, error) {
	limits, err := st.Limits()
	if err != nil {
		return 0, err
	}
	if !limits.Daily.Active {
		return 0, nil
	}
	return limits.Daily.Amount, nil
}

func nowLocal() time.Time {
	return time.Now().Local()
}

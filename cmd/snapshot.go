package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a previously exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := st.Export(out, nowLocal()); err != nil {
			return err
		}
		if len(args) == 1 && !flagQuiet {
			fmt.Printf("  Exported to %s\n", args[0])
		}
		return nil
	})
}

func runImport(_ *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening snapshot: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := st.Import(f); err != nil {
			return err
		}

		count, err := st.ExpenseCount()
		if err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Imported %d expenses from %s\n", count, args[0])
		}
		return nil
	})
}

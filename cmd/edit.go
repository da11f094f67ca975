package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount   float64
	flagEditTitle    string
	flagEditCategory string
	flagEditDate     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	editCmd.Flags().Float64Var(&flagEditAmount, "amount", 0, "New amount")
	editCmd.Flags().StringVar(&flagEditTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date (YYYY-MM-DD)")
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
}

// resolveExpense finds an entry by full or shortened id.
func resolveExpense(st *store.Store, id string) (model.Expense, error) {
	if e, err := st.GetExpense(id); err == nil {
		return e, nil
	}

	expenses, err := st.ListExpenses()
	if err != nil {
		return model.Expense{}, err
	}
	var match *model.Expense
	for i := range expenses {
		if strings.HasPrefix(expenses[i].ID, id) {
			if match != nil {
				return model.Expense{}, fmt.Errorf("id %q is ambiguous", id)
			}
			match = &expenses[i]
		}
	}
	if match == nil {
		return model.Expense{}, fmt.Errorf("expense %q not found", id)
	}
	return *match, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		e, err := resolveExpense(st, args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("amount") {
			if flagEditAmount <= 0 {
				return fmt.Errorf("invalid amount %.2f", flagEditAmount)
			}
			e.Amount = flagEditAmount
		}
		if cmd.Flags().Changed("title") {
			e.Title = flagEditTitle
		}
		if flagEditCategory != "" {
			category := model.Category(strings.ToLower(flagEditCategory))
			if !model.ValidCategory(category) {
				return fmt.Errorf("unknown category %q", flagEditCategory)
			}
			e.Category = category
		}
		if flagEditDate != "" {
			day, err := dates.ParseDayKey(flagEditDate)
			if err != nil {
				return err
			}
			e.Date = day
		}

		if err := st.SaveExpense(e); err != nil {
			return err
		}
		if err := syncStreakState(st, nowLocal()); err != nil {
			return err
		}

		if !flagQuiet {
			fmt.Printf("  Updated %s: %s\n", shortID(e.ID),
				cli.FormatMoney(cfg.General.Currency, e.Amount))
		}
		return nil
	})
}

func runRemove(_ *cobra.Command, args []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		e, err := resolveExpense(st, args[0])
		if err != nil {
			return err
		}
		if err := st.DeleteExpense(e.ID); err != nil {
			return err
		}
		if err := syncStreakState(st, nowLocal()); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Removed %s (%s)\n", shortID(e.ID),
				cli.FormatMoney(cfg.General.Currency, e.Amount))
		}
		return nil
	})
}

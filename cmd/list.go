package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/steady/internal/cli"
	"github.com/theirongolddev/steady/internal/config"
	"github.com/theirongolddev/steady/internal/dates"
	"github.com/theirongolddev/steady/internal/model"
	"github.com/theirongolddev/steady/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagListMonth    string
	flagListCategory string
	flagListAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListMonth, "month", "m", "", "Month to show (YYYY-MM, default current)")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Filter by category")
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "Show the whole ledger")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	return withStore(func(cfg config.Config, st *store.Store) error {
		expenses, err := st.ListExpenses()
		if err != nil {
			return err
		}

		if !flagListAll {
			month := nowLocal()
			if flagListMonth != "" {
				month, err = time.ParseInLocation("2006-01", flagListMonth, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", flagListMonth)
				}
			}
			start := dates.StartOfMonth(month)
			end := start.AddDate(0, 1, 0)
			expenses = filterExpenses(expenses, func(e model.Expense) bool {
				return dates.InRange(e.Date, start, end)
			})
		}

		if flagListCategory != "" {
			want := model.Category(strings.ToLower(flagListCategory))
			if !model.ValidCategory(want) {
				return fmt.Errorf("unknown category %q", flagListCategory)
			}
			expenses = filterExpenses(expenses, func(e model.Expense) bool {
				return e.Category == want
			})
		}

		if len(expenses) == 0 {
			fmt.Println("  No expenses recorded.")
			return nil
		}

		symbol := cfg.General.Currency
		var total float64
		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			total += e.Amount
			marker := ""
			if e.Kind == model.KindStructural {
				marker = "fixed"
			}
			if e.IsGoalBoost {
				marker = "boost"
			}
			rows = append(rows, []string{
				cli.FormatDate(e.Date),
				e.Title,
				string(e.Category),
				marker,
				cli.FormatMoney(symbol, e.Amount),
				shortID(e.ID),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Total", "", "", "", cli.FormatMoney(symbol, total), ""})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Title", "Category", "", "Amount", "ID"},
			Rows:    rows,
		}))
		fmt.Println()

		return nil
	})
}

func filterExpenses(expenses []model.Expense, keep func(model.Expense) bool) []model.Expense {
	out := expenses[:0:0]
	for _, e := range expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// shortID shows just enough of a UUID to address an entry.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

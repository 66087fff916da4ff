package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/render"
	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive reports from the ledger",
	}
	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newIncomeStatementCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	cmd.AddCommand(newCostCenterReportCommand())
	cmd.AddCommand(newBudgetVarianceCommand())
	return cmd
}

// reportPeriod parses the shared --from/--to flags, defaulting to the
// current calendar year.
func reportPeriod(fromStr, toStr string) (from, to time.Time, err error) {
	now := time.Now()
	from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fmt.Errorf("parsing --from %q: %w", fromStr, err)
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fmt.Errorf("parsing --to %q: %w", toStr, err)
		}
	}
	return from, to, nil
}

func newTrialBalanceCommand() *cobra.Command {
	var booksDir, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Per-account activity and balances over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			from, to, err := reportPeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			tb := reports.BuildTrialBalance(entries, b.accounts, from, to)
			fmt.Fprint(cmd.OutOrStdout(), render.TrialBalanceTable(tb, b.cfg.Display.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD")
	return cmd
}

func newIncomeStatementCommand() *cobra.Command {
	var booksDir, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			from, to, err := reportPeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			is := reports.BuildIncomeStatement(entries, b.accounts, from, to)
			fmt.Fprint(cmd.OutOrStdout(), render.IncomeStatementTable(is, b.cfg.Display.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD")
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var booksDir, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet over a period (net income shown in equity)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			from, to, err := reportPeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			bs := reports.BuildBalanceSheet(entries, b.accounts, from, to)
			fmt.Fprint(cmd.OutOrStdout(), render.BalanceSheetTable(bs, b.cfg.Display.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD")
	return cmd
}

func newCostCenterReportCommand() *cobra.Command {
	var booksDir, fromStr, toStr string
	var costCenterID int

	cmd := &cobra.Command{
		Use:   "cost-center",
		Short: "Per-account totals for one cost center over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			from, to, err := reportPeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			name := fmt.Sprintf("(%d)", costCenterID)
			if cc, ok := b.costCenters.Get(costCenterID); ok {
				name = fmt.Sprintf("%s %s", cc.Code, cc.Name)
			}
			rows := reports.BuildCostCenterReport(entries, b.accounts, costCenterID, from, to)
			fmt.Fprint(cmd.OutOrStdout(), render.CostCenterTable(name, rows, b.cfg.Display.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().IntVar(&costCenterID, "cost-center", 0, "cost center ID (required)")
	_ = cmd.MarkFlagRequired("cost-center")
	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD")
	return cmd
}

func newBudgetVarianceCommand() *cobra.Command {
	var booksDir string
	var year int

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget variance for a calendar year",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			rows := reports.BuildBudgetVariance(entries, b.budgets.ForYear(year), b.accounts, year)
			fmt.Fprint(cmd.OutOrStdout(), render.BudgetVarianceTable(year, rows, b.cfg.Display.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")
	return cmd
}

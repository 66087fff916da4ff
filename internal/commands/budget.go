package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/render"
)

func newBudgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage yearly budgets",
	}
	cmd.AddCommand(newBudgetAddCommand())
	cmd.AddCommand(newBudgetListCommand())
	return cmd
}

func newBudgetAddCommand() *cobra.Command {
	var booksDir string
	var accountCode string
	var year int
	var monthly string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a monthly budget for a revenue or expense account",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			acct, ok := b.accounts.GetByCode(accountCode)
			if !ok {
				return fmt.Errorf("no account with code %q", accountCode)
			}
			amount, err := decimal.NewFromString(monthly)
			if err != nil {
				return fmt.Errorf("parsing monthly amount %q: %w", monthly, err)
			}

			bud, err := b.budgets.Create(acct.ID, year, amount)
			if err != nil {
				return err
			}
			if err := b.budgets.Save(b.root); err != nil {
				return err
			}
			b.recordActivity("budget", "", fmt.Sprintf("%s %d: %s/month", acct.Code, year, amount.StringFixed(2)))

			fmt.Printf("Budget %d: %s %s at %s per month for %d\n",
				bud.ID, acct.Code, acct.Name, bud.MonthlyAmount.StringFixed(2), bud.Year)
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&accountCode, "account", "", "account code (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (required)")
	_ = cmd.MarkFlagRequired("year")
	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly amount (required)")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func newBudgetListCommand() *cobra.Command {
	var booksDir string
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			budgets := b.budgets.All()
			if year != 0 {
				budgets = b.budgets.ForYear(year)
			}

			currency := b.cfg.Display.Currency
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tACCOUNT\tYEAR\tMONTHLY\tYEARLY")
			for _, bud := range budgets {
				acct, _ := b.accounts.Get(bud.AccountID)
				fmt.Fprintf(w, "%d\t%s %s\t%d\t%s\t%s\n",
					bud.ID, acct.Code, acct.Name, bud.Year,
					render.Amount(bud.MonthlyAmount, currency),
					render.Amount(bud.Yearly(), currency))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().IntVar(&year, "year", 0, "filter by year")
	return cmd
}

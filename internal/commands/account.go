package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountListCommand())
	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var booksDir string
	var code, name, accountType, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account to the chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			t := model.AccountType(accountType)
			if !t.Valid() {
				return fmt.Errorf("unknown account type %q (asset, liability, equity, revenue, expense)", accountType)
			}

			acct, err := b.accounts.Create(code, name, t, description)
			if err != nil {
				return err
			}
			if err := b.accounts.Save(b.root); err != nil {
				return err
			}
			b.recordActivity("account", "", fmt.Sprintf("added %s %s", acct.Code, acct.Name))

			fmt.Printf("Added account %s %s (%s)\n", acct.Code, acct.Name, acct.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&code, "code", "", "account code (required, unique)")
	_ = cmd.MarkFlagRequired("code")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&description, "description", "", "account description")

	return cmd
}

func newAccountListCommand() *cobra.Command {
	var booksDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart of accounts ordered by code",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tTYPE\tDESCRIPTION")
			for _, a := range b.accounts.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Code, a.Name, a.Type, a.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	return cmd
}

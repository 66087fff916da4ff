package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCostCenterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costcenter",
		Short: "Manage cost centers",
	}
	cmd.AddCommand(newCostCenterAddCommand())
	cmd.AddCommand(newCostCenterListCommand())
	return cmd
}

func newCostCenterAddCommand() *cobra.Command {
	var booksDir string
	var code, name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cost center",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			cc := b.costCenters.Create(code, name, description)
			if err := b.costCenters.Save(b.root); err != nil {
				return err
			}
			b.recordActivity("costcenter", "", fmt.Sprintf("added %s %s", cc.Code, cc.Name))

			fmt.Printf("Added cost center %d %s %s\n", cc.ID, cc.Code, cc.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&code, "code", "", "cost center code (required)")
	_ = cmd.MarkFlagRequired("code")
	cmd.Flags().StringVar(&name, "name", "", "cost center name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&description, "description", "", "cost center description")

	return cmd
}

func newCostCenterListCommand() *cobra.Command {
	var booksDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost centers",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tDESCRIPTION")
			for _, cc := range b.costCenters.All() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cc.ID, cc.Code, cc.Name, cc.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	return cmd
}

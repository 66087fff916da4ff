package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/render"
)

func newEntriesCommand() *cobra.Command {
	var booksDir string

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}
			// Storage order is unspecified; display sorts by date descending.
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Date.After(entries[j].Date)
			})

			currency := b.cfg.Display.Currency
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ENTRY\tDATE\tDESCRIPTION\tAMOUNT\tLINES\tAUTO")
			for _, e := range entries {
				auto := ""
				if e.AutoGenerated {
					auto = "auto"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					e.ID, e.Date.Format("2006-01-02"), e.Description,
					render.Amount(e.TotalDebit(), currency), len(e.Lines), auto)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	return cmd
}

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/importer"
)

func newImportCommand() *cobra.Command {
	var booksDir, format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement as auto-generated entries",
		Long: `Import a bank statement CSV. Each row becomes a balanced,
auto-generated journal entry between the configured bank account and
clearing account (import.bank_account_id / import.clearing_account_id
in books.yaml).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			bankID := b.cfg.Import.BankAccountID
			clearingID := b.cfg.Import.ClearingAccountID
			if bankID == 0 || clearingID == 0 {
				return fmt.Errorf("set import.bank_account_id and import.clearing_account_id in %s first", "books.yaml")
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			txns, err := parser.Parse(f)
			if err != nil {
				return err
			}
			drafts, err := importer.DraftEntries(txns, bankID, clearingID)
			if err != nil {
				return err
			}

			posted := 0
			for _, draft := range drafts {
				entry, err := b.journal.Post(draft)
				if err != nil {
					return fmt.Errorf("posting %q: %w", draft.Description, err)
				}
				posted++
				slog.Info("imported entry", "entry_id", entry.ID, "description", entry.Description)
			}
			b.recordActivity("import", "", fmt.Sprintf("%d entries from %s", posted, args[0]))

			fmt.Printf("Imported %d entries from %s\n", posted, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&format, "format", "statement", "statement format")
	return cmd
}

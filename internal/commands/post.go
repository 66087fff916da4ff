package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/journal"
)

func newPostCommand() *cobra.Command {
	var booksDir string
	var dateStr, description string
	var debits, credits []string
	var auto bool

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a balanced journal entry",
		Long: `Post a balanced journal entry. Lines are given as repeated
--debit and --credit flags in the form CODE=AMOUNT or CODE=AMOUNT@COSTCENTER,
where CODE is an account code and COSTCENTER a cost center ID:

  bizbooks post --date 2025-03-10 --desc "Cash sale" \
    --debit 101=500.00 --credit 401=500.00@2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}

			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", dateStr, err)
			}

			draft := journal.EntryDraft{
				Date:          date,
				Description:   description,
				AutoGenerated: auto,
			}
			for _, spec := range debits {
				line, err := parseLineSpec(b, spec, true)
				if err != nil {
					return err
				}
				draft.Lines = append(draft.Lines, line)
			}
			for _, spec := range credits {
				line, err := parseLineSpec(b, spec, false)
				if err != nil {
					return err
				}
				draft.Lines = append(draft.Lines, line)
			}

			entry, err := b.journal.Post(draft)
			if err != nil {
				return err
			}
			b.recordActivity("post", entry.ID, description)
			slog.Info("entry posted", "entry_id", entry.ID, "lines", len(entry.Lines),
				"debits", entry.TotalDebit().StringFixed(2))

			fmt.Printf("Posted %s (%d lines, %s)\n",
				entry.ID, len(entry.Lines), entry.TotalDebit().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&description, "desc", "", "entry description")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line CODE=AMOUNT[@COSTCENTER]")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line CODE=AMOUNT[@COSTCENTER]")
	cmd.Flags().BoolVar(&auto, "auto", false, "mark entry as auto-generated")

	return cmd
}

// parseLineSpec parses "CODE=AMOUNT" or "CODE=AMOUNT@COSTCENTER" into a
// draft line on the requested side.
func parseLineSpec(b *books, spec string, debit bool) (journal.LineDraft, error) {
	code, rest, ok := strings.Cut(spec, "=")
	if !ok {
		return journal.LineDraft{}, fmt.Errorf("invalid line %q: expected CODE=AMOUNT", spec)
	}

	amountStr, ccStr, hasCC := strings.Cut(rest, "@")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return journal.LineDraft{}, fmt.Errorf("invalid amount in %q: %w", spec, err)
	}

	acct, found := b.accounts.GetByCode(code)
	if !found {
		return journal.LineDraft{}, fmt.Errorf("no account with code %q", code)
	}

	line := journal.LineDraft{AccountID: acct.ID}
	if debit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}

	if hasCC {
		ccID, err := strconv.Atoi(ccStr)
		if err != nil {
			return journal.LineDraft{}, fmt.Errorf("invalid cost center in %q: %w", spec, err)
		}
		if _, found := b.costCenters.Get(ccID); !found {
			return journal.LineDraft{}, fmt.Errorf("no cost center with ID %d", ccID)
		}
		line.CostCenterID = ccID
	}

	return line, nil
}

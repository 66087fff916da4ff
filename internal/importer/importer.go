// Package importer turns bank statement CSVs into auto-generated draft
// journal entries. Imported drafts post against a clearing account so a
// bookkeeper can reclassify them later; entries produced here carry the
// auto-generated flag.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bizbooks-dev/bizbooks/internal/journal"
)

// Parser converts a statement file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StatementParser{})
	return r
}

// DraftEntries converts statement transactions into balanced drafts.
// Money leaving the bank debits the clearing account and credits the
// bank account; money arriving does the reverse. Every draft carries the
// auto-generated flag.
func DraftEntries(txns []Transaction, bankAccountID, clearingAccountID int) ([]journal.EntryDraft, error) {
	drafts := make([]journal.EntryDraft, 0, len(txns))
	for i, txn := range txns {
		if txn.Amount.IsZero() {
			continue
		}
		if txn.Date.IsZero() {
			return nil, fmt.Errorf("transaction %d: missing date", i+1)
		}

		amount := txn.Amount.Abs()
		draft := journal.EntryDraft{
			Date:          txn.Date,
			Description:   txn.Description,
			AutoGenerated: true,
		}
		if txn.Amount.IsNegative() {
			draft.Lines = []journal.LineDraft{
				{AccountID: clearingAccountID, Debit: amount, Description: txn.Reference},
				{AccountID: bankAccountID, Credit: amount},
			}
		} else {
			draft.Lines = []journal.LineDraft{
				{AccountID: bankAccountID, Debit: amount},
				{AccountID: clearingAccountID, Credit: amount, Description: txn.Reference},
			}
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

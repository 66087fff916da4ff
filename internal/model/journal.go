package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single row in journal.csv (one posting within an
// entry). CostCenterID is 0 when the line is not attributed to a cost
// center. A line may carry both a debit and a credit, or neither; only
// the entry-level balance is enforced.
type JournalLine struct {
	LineID       string // "YYYY-MM-NNNx" where x = a,b,c...
	AccountID    int
	Debit        decimal.Decimal // zero if credit side
	Credit       decimal.Decimal // zero if debit side
	CostCenterID int             // 0 = none
	Description  string
}

// JournalEntry is an atomic, balanced set of postings. Entries are
// append-only: once posted they are never mutated or removed.
type JournalEntry struct {
	ID            string // "YYYY-MM-NNN"
	Date          time.Time
	Description   string
	AutoGenerated bool
	Lines         []JournalLine
}

// TotalDebit returns the unsigned sum of the entry's debit amounts.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit returns the unsigned sum of the entry's credit amounts.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

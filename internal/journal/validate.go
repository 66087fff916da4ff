package journal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNoLines reports a draft with no lines. There is nothing to
// persist, so claiming a successful post would be a lie.
var ErrNoLines = errors.New("entry has no lines")

// balanceTolerance is the absolute slack allowed between an entry's
// debit and credit totals.
var balanceTolerance = decimal.New(1, -2) // 0.01

// UnknownAccountError reports a draft line naming an account that does
// not exist in the chart of accounts.
type UnknownAccountError struct {
	AccountID int
	Line      int // zero-based index into the draft's lines
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("line %d: unknown account %d", e.Line+1, e.AccountID)
}

// UnbalancedError reports an entry whose debit and credit totals differ
// by more than the tolerance. It carries both computed totals so the
// caller can show them.
type UnbalancedError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e UnbalancedError) Error() string {
	return fmt.Sprintf("entry does not balance: debits (%s) != credits (%s)",
		e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id int) bool
}

// Validate checks a draft against the posting invariants: the draft
// must carry at least one line, every line must name an existing
// account, and debit and credit totals must agree within the
// tolerance. Lines with both sides set, or neither, are
// accepted; the source system never rejected them and tightening that
// would refuse data it silently took.
func Validate(draft EntryDraft, accounts AccountChecker) error {
	if len(draft.Lines) == 0 {
		return ErrNoLines
	}

	for i, line := range draft.Lines {
		if !accounts.Exists(line.AccountID) {
			return UnknownAccountError{AccountID: line.AccountID, Line: i}
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range draft.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
		return UnbalancedError{Debits: totalDebit, Credits: totalCredit}
	}

	return nil
}

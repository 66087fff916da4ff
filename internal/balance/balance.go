// Package balance is the pure derivation core: date filtering, signed
// per-account balances, and raw debit/credit turnover. Every function is
// deterministic and side-effect-free; reports are assembled on top of
// these and never re-derive the sign convention themselves.
package balance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// AccountGetter resolves account IDs against the chart of accounts.
type AccountGetter interface {
	Get(id int) (model.Account, bool)
}

// FilterByDate keeps entries whose date falls within [from 00:00:00,
// to 23:59:59] inclusive, in the entries' own location-normalized day
// boundaries.
func FilterByDate(entries []model.JournalEntry, from, to time.Time) []model.JournalEntry {
	start := dayStart(from)
	end := dayEnd(to)

	var out []model.JournalEntry
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Signed converts a line's raw debit/credit pair into a signed balance
// contribution under the normal-balance convention: debit-normal types
// (asset, expense) gain debit-credit, credit-normal types (liability,
// equity, revenue) gain credit-debit.
func Signed(t model.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if t.DebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// AccountBalances computes the signed balance per account over the given
// entries. Lines naming an account missing from the chart are skipped;
// balance derivation never fails.
func AccountBalances(entries []model.JournalEntry, accounts AccountGetter) map[int]decimal.Decimal {
	balances := make(map[int]decimal.Decimal)
	for _, e := range entries {
		for _, l := range e.Lines {
			acct, ok := accounts.Get(l.AccountID)
			if !ok {
				continue
			}
			balances[l.AccountID] = balances[l.AccountID].Add(Signed(acct.Type, l.Debit, l.Credit))
		}
	}
	return balances
}

// Turnover returns the unsigned debit and credit sums across all lines
// referencing the account, independent of sign convention.
func Turnover(entries []model.JournalEntry, accountID int) (debit, credit decimal.Decimal) {
	for _, e := range entries {
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			debit = debit.Add(l.Debit)
			credit = credit.Add(l.Credit)
		}
	}
	return debit, credit
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

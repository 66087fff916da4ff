package model

import "github.com/shopspring/decimal"

// Budget is a flat monthly spending or earning target for a single
// revenue or expense account in a calendar year. Several budgets may
// exist for the same account and year; variance reporting picks up all
// of them.
type Budget struct {
	ID            int
	AccountID     int
	Year          int
	MonthlyAmount decimal.Decimal
}

// Yearly returns the annual target (twelve flat months).
func (b Budget) Yearly() decimal.Decimal {
	return b.MonthlyAmount.Mul(decimal.NewFromInt(12))
}

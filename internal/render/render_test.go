package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "$1,234.50", Amount(dec("1234.5"), "USD"))
	assert.Equal(t, "-$12.00", Amount(dec("-12"), "USD"))
	// JPY has no minor unit.
	assert.Equal(t, "¥1,235", Amount(dec("1234.6"), "JPY"))
	// Unknown currency falls back to a plain fixed string.
	assert.Equal(t, "12.34", Amount(dec("12.34"), "XXX-NOT-A-CODE"))
}

func TestTrialBalanceTable(t *testing.T) {
	tb := reports.TrialBalance{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Rows: []reports.TrialBalanceRow{
			{Code: "101", Name: "Cash", Type: model.AccountTypeAsset,
				Debit: dec("500"), Balance: dec("500")},
		},
		TotalDebit: dec("500"),
	}

	out := TrialBalanceTable(tb, "USD")
	assert.True(t, strings.Contains(out, "Trial Balance 2025-01-01 to 2025-12-31"))
	assert.True(t, strings.Contains(out, "Cash"))
	assert.True(t, strings.Contains(out, "$500.00"))
}

func TestBudgetVarianceTable_Empty(t *testing.T) {
	out := BudgetVarianceTable(2024, nil, "USD")
	assert.True(t, strings.Contains(out, "No budgets"))
}

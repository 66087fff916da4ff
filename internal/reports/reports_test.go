package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/accounts"
	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func testChart(t *testing.T) *accounts.Service {
	t.Helper()
	svc := accounts.NewService(nil)
	for _, a := range []struct {
		code string
		name string
		typ  model.AccountType
	}{
		{"101", "Cash", model.AccountTypeAsset},
		{"201", "Accounts Payable", model.AccountTypeLiability},
		{"301", "Owner's Equity", model.AccountTypeEquity},
		{"401", "Sales", model.AccountTypeRevenue},
		{"510", "Salaries", model.AccountTypeExpense},
	} {
		_, err := svc.Create(a.code, a.name, a.typ, "")
		require.NoError(t, err)
	}
	return svc
}

func acctID(t *testing.T, chart *accounts.Service, code string) int {
	t.Helper()
	a, ok := chart.GetByCode(code)
	require.True(t, ok, "account %s", code)
	return a.ID
}

func entry(d time.Time, lines ...model.JournalLine) model.JournalEntry {
	return model.JournalEntry{Date: d, Lines: lines}
}

func line(acct int, debit, credit string) model.JournalLine {
	return model.JournalLine{AccountID: acct, Debit: dec(debit), Credit: dec(credit)}
}

// The cash-sale scenario: post debit 101 / credit 401 for 500 and check
// every report agrees.
func TestCashSaleScenario(t *testing.T) {
	chart := testChart(t)
	cash := acctID(t, chart, "101")
	sales := acctID(t, chart, "401")

	entries := []model.JournalEntry{
		entry(date(2025, 3, 10),
			line(cash, "500", "0"),
			line(sales, "0", "500"),
		),
	}
	from, to := date(2025, 1, 1), date(2025, 12, 31)

	tb := BuildTrialBalance(entries, chart, from, to)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "101", tb.Rows[0].Code)
	assert.True(t, tb.Rows[0].Balance.Equal(dec("500")))
	assert.Equal(t, "401", tb.Rows[1].Code)
	assert.True(t, tb.Rows[1].Balance.Equal(dec("500")))
	assert.True(t, tb.TotalDebit.Equal(dec("500")))
	assert.True(t, tb.TotalCredit.Equal(dec("500")))

	is := BuildIncomeStatement(entries, chart, from, to)
	assert.True(t, is.TotalRevenue.Equal(dec("500")))
	assert.True(t, is.TotalExpenses.IsZero())
	assert.True(t, is.NetIncome.Equal(dec("500")))

	bs := BuildBalanceSheet(entries, chart, from, to)
	assert.True(t, bs.TotalAssets.Equal(dec("500")))
	assert.True(t, bs.TotalEquity.IsZero())
	assert.True(t, bs.TotalEquityWithIncome.Equal(dec("500")))
}

func TestTrialBalance_ZeroActivitySuppressed(t *testing.T) {
	chart := testChart(t)
	cash := acctID(t, chart, "101")
	sales := acctID(t, chart, "401")

	entries := []model.JournalEntry{
		entry(date(2025, 3, 10),
			line(cash, "100", "0"),
			line(sales, "0", "100"),
		),
	}

	tb := BuildTrialBalance(entries, chart, date(2025, 1, 1), date(2025, 12, 31))
	for _, row := range tb.Rows {
		assert.NotEqual(t, "510", row.Code, "untouched account must not appear")
	}
	assert.Len(t, tb.Rows, 2)

	// Outside the period everything is suppressed.
	empty := BuildTrialBalance(entries, chart, date(2024, 1, 1), date(2024, 12, 31))
	assert.Empty(t, empty.Rows)
}

func TestBalanceSheet_Identity(t *testing.T) {
	chart := testChart(t)
	cash := acctID(t, chart, "101")
	payable := acctID(t, chart, "201")
	equity := acctID(t, chart, "301")
	sales := acctID(t, chart, "401")
	salaries := acctID(t, chart, "510")

	entries := []model.JournalEntry{
		// Owner funds the business.
		entry(date(2025, 1, 5),
			line(cash, "1000", "0"),
			line(equity, "0", "1000"),
		),
		// A sale on credit terms collected in cash.
		entry(date(2025, 2, 1),
			line(cash, "750", "0"),
			line(sales, "0", "750"),
		),
		// Salaries owed but unpaid.
		entry(date(2025, 2, 28),
			line(salaries, "300", "0"),
			line(payable, "0", "300"),
		),
	}

	bs := BuildBalanceSheet(entries, chart, date(2025, 1, 1), date(2025, 12, 31))
	lhs := bs.TotalAssets
	rhs := bs.TotalLiabilities.Add(bs.TotalEquityWithIncome)
	assert.True(t, lhs.Equal(rhs), "assets %s vs liabilities+equity %s", lhs, rhs)
	assert.True(t, bs.NetIncome.Equal(dec("450")))
}

func TestCostCenterReport(t *testing.T) {
	chart := testChart(t)
	cash := acctID(t, chart, "101")
	salaries := acctID(t, chart, "510")

	entries := []model.JournalEntry{
		entry(date(2025, 4, 1),
			model.JournalLine{AccountID: salaries, Debit: dec("200"), CostCenterID: 7},
			model.JournalLine{AccountID: cash, Credit: dec("200")},
		),
		entry(date(2025, 4, 2),
			model.JournalLine{AccountID: salaries, Debit: dec("50"), CostCenterID: 7},
			model.JournalLine{AccountID: cash, Credit: dec("50"), CostCenterID: 9},
		),
	}
	from, to := date(2025, 1, 1), date(2025, 12, 31)

	rows := BuildCostCenterReport(entries, chart, 7, from, to)
	require.Len(t, rows, 1)
	assert.Equal(t, "Salaries", rows[0].AccountName)
	assert.Equal(t, model.AccountTypeExpense, rows[0].AccountType)
	assert.True(t, rows[0].Total.Equal(dec("250")))

	// No selection, no rows.
	assert.Empty(t, BuildCostCenterReport(entries, chart, 0, from, to))
	// Unused cost center, no rows.
	assert.Empty(t, BuildCostCenterReport(entries, chart, 3, from, to))
}

func TestBudgetVariance_OverBudget(t *testing.T) {
	chart := testChart(t)
	cash := acctID(t, chart, "101")
	salaries := acctID(t, chart, "510")

	var entries []model.JournalEntry
	// 13,000 of salary debits across 2024.
	for month := 1; month <= 12; month++ {
		entries = append(entries, entry(date(2024, month, 15),
			line(salaries, "1000", "0"),
			line(cash, "0", "1000"),
		))
	}
	entries = append(entries, entry(date(2024, 12, 31),
		line(salaries, "1000", "0"),
		line(cash, "0", "1000"),
	))
	// Activity in another year must not count.
	entries = append(entries, entry(date(2025, 1, 15),
		line(salaries, "9999", "0"),
		line(cash, "0", "9999"),
	))

	budgets := []model.Budget{
		{ID: 1, AccountID: salaries, Year: 2024, MonthlyAmount: dec("1000")},
	}

	rows := BuildBudgetVariance(entries, budgets, chart, 2024)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.True(t, row.YearlyBudget.Equal(dec("12000")))
	assert.True(t, row.YearlyActual.Equal(dec("13000")))
	assert.True(t, row.Variance.Equal(dec("1000")))
	assert.True(t, row.OverBudget)
	percent, _ := row.PercentUsed.Round(1).Float64()
	assert.InDelta(t, 108.3, percent, 0.05)
}

func TestBudgetVariance_ZeroBudgetGuard(t *testing.T) {
	chart := testChart(t)
	salaries := acctID(t, chart, "510")

	budgets := []model.Budget{
		{ID: 1, AccountID: salaries, Year: 2024, MonthlyAmount: decimal.Zero},
	}

	rows := BuildBudgetVariance(nil, budgets, chart, 2024)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].PercentUsed.IsZero())
}

func TestBudgetVariance_YearFilter(t *testing.T) {
	chart := testChart(t)
	salaries := acctID(t, chart, "510")

	budgets := []model.Budget{
		{ID: 1, AccountID: salaries, Year: 2023, MonthlyAmount: dec("100")},
		{ID: 2, AccountID: salaries, Year: 2024, MonthlyAmount: dec("200")},
	}

	rows := BuildBudgetVariance(nil, budgets, chart, 2024)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].MonthlyBudget.Equal(dec("200")))
}

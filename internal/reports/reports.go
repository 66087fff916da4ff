// Package reports derives the five ledger reports from the balance
// engine's output. Every report is a plain value structure assembled by
// a pure function; viewing a report never mutates the ledger.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/balance"
	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// ChartReader is the chart-of-accounts view reports need.
type ChartReader interface {
	All() []model.Account
	Get(id int) (model.Account, bool)
}

// TrialBalanceRow summarizes one account's activity over the period.
type TrialBalanceRow struct {
	Code    string
	Name    string
	Type    model.AccountType
	Debit   decimal.Decimal // raw turnover
	Credit  decimal.Decimal // raw turnover
	Balance decimal.Decimal // signed, normal-balance convention
}

// TrialBalance is the per-account activity report. Column totals are the
// sums over the emitted rows; they are not asserted equal, that equality
// only emerges when every posted entry balanced individually.
type TrialBalance struct {
	From        time.Time
	To          time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// BuildTrialBalance computes the trial balance over [from, to]. Accounts
// with no raw activity and a zero balance in the period are omitted.
func BuildTrialBalance(entries []model.JournalEntry, chart ChartReader, from, to time.Time) TrialBalance {
	filtered := balance.FilterByDate(entries, from, to)
	balances := balance.AccountBalances(filtered, chart)

	tb := TrialBalance{From: from, To: to}
	for _, acct := range chart.All() {
		debit, credit := balance.Turnover(filtered, acct.ID)
		bal := balances[acct.ID]
		if debit.IsZero() && credit.IsZero() && bal.IsZero() {
			continue
		}
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			Code:    acct.Code,
			Name:    acct.Name,
			Type:    acct.Type,
			Debit:   debit,
			Credit:  credit,
			Balance: bal,
		})
		tb.TotalDebit = tb.TotalDebit.Add(debit)
		tb.TotalCredit = tb.TotalCredit.Add(credit)
	}
	return tb
}

// AccountAmount is one account's signed balance within a report section.
type AccountAmount struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

// IncomeStatement partitions period activity into revenue and expenses.
type IncomeStatement struct {
	From          time.Time
	To            time.Time
	Revenue       []AccountAmount
	Expenses      []AccountAmount
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// BuildIncomeStatement derives the income statement from the same rows
// as the trial balance over [from, to].
func BuildIncomeStatement(entries []model.JournalEntry, chart ChartReader, from, to time.Time) IncomeStatement {
	tb := BuildTrialBalance(entries, chart, from, to)

	is := IncomeStatement{From: from, To: to}
	for _, row := range tb.Rows {
		amount := AccountAmount{Code: row.Code, Name: row.Name, Amount: row.Balance}
		switch row.Type {
		case model.AccountTypeRevenue:
			is.Revenue = append(is.Revenue, amount)
			is.TotalRevenue = is.TotalRevenue.Add(row.Balance)
		case model.AccountTypeExpense:
			is.Expenses = append(is.Expenses, amount)
			is.TotalExpenses = is.TotalExpenses.Add(row.Balance)
		}
	}
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)
	return is
}

// BalanceSheet partitions period activity into assets, liabilities and
// equity. Net income is folded into equity for display only (a soft
// close); no closing entry exists in the ledger, so the trial balance
// and this report intentionally disagree about equity.
type BalanceSheet struct {
	From                  time.Time
	To                    time.Time
	Assets                []AccountAmount
	Liabilities           []AccountAmount
	Equity                []AccountAmount
	TotalAssets           decimal.Decimal
	TotalLiabilities      decimal.Decimal
	TotalEquity           decimal.Decimal
	NetIncome             decimal.Decimal
	TotalEquityWithIncome decimal.Decimal
}

// BuildBalanceSheet derives the balance sheet over [from, to].
func BuildBalanceSheet(entries []model.JournalEntry, chart ChartReader, from, to time.Time) BalanceSheet {
	tb := BuildTrialBalance(entries, chart, from, to)

	bs := BalanceSheet{From: from, To: to}
	for _, row := range tb.Rows {
		amount := AccountAmount{Code: row.Code, Name: row.Name, Amount: row.Balance}
		switch row.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, amount)
			bs.TotalAssets = bs.TotalAssets.Add(row.Balance)
		case model.AccountTypeLiability:
			bs.Liabilities = append(bs.Liabilities, amount)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(row.Balance)
		case model.AccountTypeEquity:
			bs.Equity = append(bs.Equity, amount)
			bs.TotalEquity = bs.TotalEquity.Add(row.Balance)
		case model.AccountTypeRevenue:
			bs.NetIncome = bs.NetIncome.Add(row.Balance)
		case model.AccountTypeExpense:
			bs.NetIncome = bs.NetIncome.Sub(row.Balance)
		}
	}
	bs.TotalEquityWithIncome = bs.TotalEquity.Add(bs.NetIncome)
	return bs
}

// CostCenterRow is one account's signed total within a cost center.
type CostCenterRow struct {
	AccountName string
	AccountType model.AccountType
	Total       decimal.Decimal
}

// BuildCostCenterReport totals the lines tagged with the cost center
// over [from, to], grouped by account and ordered by account code. A
// zero cost center ID means no selection and yields no rows.
func BuildCostCenterReport(entries []model.JournalEntry, chart ChartReader, costCenterID int, from, to time.Time) []CostCenterRow {
	if costCenterID == 0 {
		return nil
	}

	filtered := balance.FilterByDate(entries, from, to)
	totals := make(map[int]decimal.Decimal)
	for _, e := range filtered {
		for _, l := range e.Lines {
			if l.CostCenterID != costCenterID {
				continue
			}
			acct, ok := chart.Get(l.AccountID)
			if !ok {
				continue
			}
			totals[l.AccountID] = totals[l.AccountID].Add(balance.Signed(acct.Type, l.Debit, l.Credit))
		}
	}

	ids := make([]int, 0, len(totals))
	for acctID := range totals {
		ids = append(ids, acctID)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := chart.Get(ids[i])
		b, _ := chart.Get(ids[j])
		return a.Code < b.Code
	})

	rows := make([]CostCenterRow, 0, len(ids))
	for _, acctID := range ids {
		acct, _ := chart.Get(acctID)
		rows = append(rows, CostCenterRow{
			AccountName: acct.Name,
			AccountType: acct.Type,
			Total:       totals[acctID],
		})
	}
	return rows
}

// BudgetVarianceRow compares one budget row against the account's actual
// activity over its calendar year.
type BudgetVarianceRow struct {
	AccountCode   string
	AccountName   string
	MonthlyBudget decimal.Decimal
	YearlyBudget  decimal.Decimal
	YearlyActual  decimal.Decimal
	Variance      decimal.Decimal
	PercentUsed   decimal.Decimal
	OverBudget    bool
}

var hundred = decimal.NewFromInt(100)

// BuildBudgetVariance reports each budget for the year against the
// sign-adjusted activity of its account over the whole calendar year,
// independent of any report date filter. Percent used is guarded to zero
// when the yearly budget is not positive.
func BuildBudgetVariance(entries []model.JournalEntry, budgets []model.Budget, chart ChartReader, year int) []BudgetVarianceRow {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	yearEntries := balance.FilterByDate(entries, yearStart, yearEnd)
	actuals := balance.AccountBalances(yearEntries, chart)

	var rows []BudgetVarianceRow
	for _, b := range budgets {
		if b.Year != year {
			continue
		}
		acct, _ := chart.Get(b.AccountID)

		yearlyBudget := b.Yearly()
		yearlyActual := actuals[b.AccountID]
		percentUsed := decimal.Zero
		if yearlyBudget.IsPositive() {
			percentUsed = yearlyActual.Div(yearlyBudget).Mul(hundred)
		}

		rows = append(rows, BudgetVarianceRow{
			AccountCode:   acct.Code,
			AccountName:   acct.Name,
			MonthlyBudget: b.MonthlyAmount,
			YearlyBudget:  yearlyBudget,
			YearlyActual:  yearlyActual,
			Variance:      yearlyActual.Sub(yearlyBudget),
			PercentUsed:   percentUsed,
			OverBudget:    yearlyActual.GreaterThan(yearlyBudget),
		})
	}
	return rows
}

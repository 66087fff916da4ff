// Package render formats reports as plain-text tables for the CLI. It is
// the presentation collaborator of the ledger core: the core hands it
// immutable report values and all currency formatting happens here.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

// Amount formats a decimal in the given ISO currency. An unknown
// currency code falls back to a bare two-decimal string.
func Amount(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(2)
	}
	units := d.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart()
	return money.New(units, currency).Display()
}

// TrialBalanceTable renders the trial balance report.
func TrialBalanceTable(tb reports.TrialBalance, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trial Balance %s to %s\n\n",
		tb.From.Format("2006-01-02"), tb.To.Format("2006-01-02"))

	w := newTable(&b)
	fmt.Fprintln(w, "CODE\tACCOUNT\tTYPE\tDEBIT\tCREDIT\tBALANCE")
	for _, row := range tb.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Code, row.Name, row.Type,
			Amount(row.Debit, currency), Amount(row.Credit, currency), Amount(row.Balance, currency))
	}
	fmt.Fprintf(w, "\tTOTAL\t\t%s\t%s\t\n",
		Amount(tb.TotalDebit, currency), Amount(tb.TotalCredit, currency))
	w.Flush()
	return b.String()
}

// IncomeStatementTable renders the income statement report.
func IncomeStatementTable(is reports.IncomeStatement, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income Statement %s to %s\n\n",
		is.From.Format("2006-01-02"), is.To.Format("2006-01-02"))

	w := newTable(&b)
	fmt.Fprintln(w, "REVENUE\t")
	for _, r := range is.Revenue {
		fmt.Fprintf(w, "  %s %s\t%s\n", r.Code, r.Name, Amount(r.Amount, currency))
	}
	fmt.Fprintf(w, "Total Revenue\t%s\n", Amount(is.TotalRevenue, currency))
	fmt.Fprintln(w, "EXPENSES\t")
	for _, r := range is.Expenses {
		fmt.Fprintf(w, "  %s %s\t%s\n", r.Code, r.Name, Amount(r.Amount, currency))
	}
	fmt.Fprintf(w, "Total Expenses\t%s\n", Amount(is.TotalExpenses, currency))
	fmt.Fprintf(w, "NET INCOME\t%s\n", Amount(is.NetIncome, currency))
	w.Flush()
	return b.String()
}

// BalanceSheetTable renders the balance sheet report.
func BalanceSheetTable(bs reports.BalanceSheet, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Balance Sheet %s to %s\n\n",
		bs.From.Format("2006-01-02"), bs.To.Format("2006-01-02"))

	w := newTable(&b)
	section := func(title string, rows []reports.AccountAmount, total decimal.Decimal) {
		fmt.Fprintf(w, "%s\t\n", title)
		for _, r := range rows {
			fmt.Fprintf(w, "  %s %s\t%s\n", r.Code, r.Name, Amount(r.Amount, currency))
		}
		fmt.Fprintf(w, "Total %s\t%s\n", title, Amount(total, currency))
	}
	section("ASSETS", bs.Assets, bs.TotalAssets)
	section("LIABILITIES", bs.Liabilities, bs.TotalLiabilities)
	section("EQUITY", bs.Equity, bs.TotalEquity)
	fmt.Fprintf(w, "Net Income\t%s\n", Amount(bs.NetIncome, currency))
	fmt.Fprintf(w, "Equity incl. Income\t%s\n", Amount(bs.TotalEquityWithIncome, currency))
	w.Flush()
	return b.String()
}

// CostCenterTable renders a cost-center report.
func CostCenterTable(name string, rows []reports.CostCenterRow, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cost Center: %s\n\n", name)

	if len(rows) == 0 {
		b.WriteString("No activity in the period.\n")
		return b.String()
	}

	w := newTable(&b)
	fmt.Fprintln(w, "ACCOUNT\tTYPE\tTOTAL")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.AccountName, row.AccountType, Amount(row.Total, currency))
	}
	w.Flush()
	return b.String()
}

// BudgetVarianceTable renders the budget variance report for a year.
func BudgetVarianceTable(year int, rows []reports.BudgetVarianceRow, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Budget Variance %d\n\n", year)

	if len(rows) == 0 {
		b.WriteString("No budgets for this year.\n")
		return b.String()
	}

	w := newTable(&b)
	fmt.Fprintln(w, "CODE\tACCOUNT\tBUDGET/YR\tACTUAL\tVARIANCE\tUSED\tOVER")
	for _, row := range rows {
		over := ""
		if row.OverBudget {
			over = "OVER"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%%\t%s\n",
			row.AccountCode, row.AccountName,
			Amount(row.YearlyBudget, currency), Amount(row.YearlyActual, currency),
			Amount(row.Variance, currency), row.PercentUsed.StringFixed(1), over)
	}
	w.Flush()
	return b.String()
}

func newTable(b *strings.Builder) *tabwriter.Writer {
	return tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
}

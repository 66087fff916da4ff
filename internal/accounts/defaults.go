package accounts

import "github.com/bizbooks-dev/bizbooks/internal/model"

// DefaultChart returns the starter chart of accounts seeded by init.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: 1, Code: "101", Name: "Cash", Type: model.AccountTypeAsset, Description: "Cash on hand and in bank"},
		{ID: 2, Code: "110", Name: "Accounts Receivable", Type: model.AccountTypeAsset, Description: "Amounts owed by customers"},
		{ID: 3, Code: "150", Name: "Equipment", Type: model.AccountTypeAsset},
		{ID: 4, Code: "201", Name: "Accounts Payable", Type: model.AccountTypeLiability, Description: "Amounts owed to suppliers"},
		{ID: 5, Code: "210", Name: "Taxes Payable", Type: model.AccountTypeLiability},
		{ID: 6, Code: "301", Name: "Owner's Equity", Type: model.AccountTypeEquity},
		{ID: 7, Code: "401", Name: "Sales", Type: model.AccountTypeRevenue, Description: "Revenue from sales"},
		{ID: 8, Code: "402", Name: "Service Revenue", Type: model.AccountTypeRevenue},
		{ID: 9, Code: "501", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{ID: 10, Code: "510", Name: "Salaries", Type: model.AccountTypeExpense, Description: "Wages and payroll costs"},
		{ID: 11, Code: "520", Name: "Rent", Type: model.AccountTypeExpense},
		{ID: 12, Code: "530", Name: "Utilities", Type: model.AccountTypeExpense},
		{ID: 13, Code: "590", Name: "Uncategorized Expense", Type: model.AccountTypeExpense, Description: "Clearing account for imported activity"},
	}
}

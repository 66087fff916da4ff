package model

// AccountType classifies accounts in the chart of accounts and fixes the
// normal-balance sign convention for every balance derived from them.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether debits increase balances of this type.
// Asset and expense accounts are debit-normal; liability, equity and
// revenue accounts are credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents a row in chart-of-accounts.csv. Code is unique among
// accounts and drives display ordering; Type is fixed at creation because
// changing it would silently change historical balances.
type Account struct {
	ID          int
	Code        string
	Name        string
	Type        AccountType
	Description string
}

// CostCenter is a tagging dimension for departmental or branch cost
// attribution. It carries no balance of its own; journal lines reference
// it by ID.
type CostCenter struct {
	ID          int
	Code        string
	Name        string
	Description string
}

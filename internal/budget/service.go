// Package budget holds per-account monthly budget targets for a calendar
// year. Only revenue and expense accounts can be budgeted; nothing stops
// several budgets from naming the same account and year.
package budget

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// InvalidAccountError reports a budget pointed at a missing account or at
// one that is not revenue/expense.
type InvalidAccountError struct {
	AccountID int
}

func (e InvalidAccountError) Error() string {
	return fmt.Sprintf("account %d does not exist or is not a revenue/expense account", e.AccountID)
}

// InvalidAmountError reports a non-positive monthly amount.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("monthly amount must be positive, got %s", e.Amount.StringFixed(2))
}

// AccountGetter resolves account IDs against the chart of accounts.
type AccountGetter interface {
	Get(id int) (model.Account, bool)
}

// Service provides in-memory creation and lookup over budgets.
type Service struct {
	budgets  []model.Budget
	accounts AccountGetter
	nextID   int
}

// NewService creates a Service over existing budgets.
func NewService(budgets []model.Budget, accounts AccountGetter) *Service {
	nextID := 1
	for _, b := range budgets {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}
	return &Service{budgets: budgets, accounts: accounts, nextID: nextID}
}

// Load reads budgets.csv from a books root. A missing file yields an
// empty Service.
func Load(booksRoot string, accounts AccountGetter) (*Service, error) {
	path := filepath.Join(booksRoot, "budgets.csv")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil, accounts), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening budgets: %w", err)
	}
	defer f.Close()

	budgets, err := ReadBudgets(f)
	if err != nil {
		return nil, fmt.Errorf("reading budgets: %w", err)
	}
	return NewService(budgets, accounts), nil
}

// Create adds a budget row. The account must exist and be revenue or
// expense; the monthly amount must be positive. Duplicate account/year
// combinations are accepted.
func (s *Service) Create(accountID, year int, monthlyAmount decimal.Decimal) (model.Budget, error) {
	acct, ok := s.accounts.Get(accountID)
	if !ok || (acct.Type != model.AccountTypeRevenue && acct.Type != model.AccountTypeExpense) {
		return model.Budget{}, InvalidAccountError{AccountID: accountID}
	}
	if !monthlyAmount.IsPositive() {
		return model.Budget{}, InvalidAmountError{Amount: monthlyAmount}
	}

	b := model.Budget{
		ID:            s.nextID,
		AccountID:     accountID,
		Year:          year,
		MonthlyAmount: monthlyAmount,
	}
	s.nextID++
	s.budgets = append(s.budgets, b)
	return b, nil
}

// All returns all budgets in creation order.
func (s *Service) All() []model.Budget {
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// ForYear returns every budget row matching the given year.
func (s *Service) ForYear(year int) []model.Budget {
	var out []model.Budget
	for _, b := range s.budgets {
		if b.Year == year {
			out = append(out, b)
		}
	}
	return out
}

// Save writes budgets to budgets.csv under the books root.
func (s *Service) Save(booksRoot string) error {
	path := filepath.Join(booksRoot, "budgets.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating budgets file: %w", err)
	}
	defer f.Close()

	if err := WriteBudgets(f, s.budgets); err != nil {
		return fmt.Errorf("writing budgets: %w", err)
	}
	return nil
}

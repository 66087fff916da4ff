// Package accounts holds the chart of accounts: creation with unique
// codes, lookup by ID, and CSV persistence under the books root.
package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// DuplicateCodeError reports an attempt to create an account whose code
// already exists in the chart. Matching is case-sensitive and exact.
type DuplicateCodeError struct {
	Code string
}

func (e DuplicateCodeError) Error() string {
	return fmt.Sprintf("account code %q already exists", e.Code)
}

// Service provides in-memory lookup and creation over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[int]model.Account
	byCode   map[string]int
	nextID   int
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[int]model.Account, len(accounts))
	byCode := make(map[string]int, len(accounts))
	nextID := 1
	for _, a := range accounts {
		byID[a.ID] = a
		byCode[a.Code] = a.ID
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}
	return &Service{accounts: accounts, byID: byID, byCode: byCode, nextID: nextID}
}

// Load reads chart-of-accounts.csv from a books root and returns a Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// Create adds an account to the chart. It fails with DuplicateCodeError
// when the code is already taken; no other validation is applied.
func (s *Service) Create(code, name string, accountType model.AccountType, description string) (model.Account, error) {
	if _, taken := s.byCode[code]; taken {
		return model.Account{}, DuplicateCodeError{Code: code}
	}

	acct := model.Account{
		ID:          s.nextID,
		Code:        code,
		Name:        name,
		Type:        accountType,
		Description: description,
	}
	s.nextID++
	s.accounts = append(s.accounts, acct)
	s.byID[acct.ID] = acct
	s.byCode[acct.Code] = acct.ID
	return acct, nil
}

// All returns all accounts ordered by code.
func (s *Service) All() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// GetByCode returns an account by its code.
func (s *Service) GetByCode(code string) (model.Account, bool) {
	id, ok := s.byCode[code]
	if !ok {
		return model.Account{}, false
	}
	return s.byID[id], true
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type, ordered by code.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.All() {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.All()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// Package costcenter holds the cost-center tag dimension. Cost centers
// carry no balances; journal lines reference them by ID for departmental
// attribution.
package costcenter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Service provides in-memory lookup and creation over cost centers.
type Service struct {
	centers []model.CostCenter
	byID    map[int]model.CostCenter
	nextID  int
}

// NewService creates a Service from a slice of cost centers.
func NewService(centers []model.CostCenter) *Service {
	byID := make(map[int]model.CostCenter, len(centers))
	nextID := 1
	for _, c := range centers {
		byID[c.ID] = c
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	return &Service{centers: centers, byID: byID, nextID: nextID}
}

// Load reads cost-centers.csv from a books root and returns a Service.
// A missing file yields an empty Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "accounts", "cost-centers.csv")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening cost centers: %w", err)
	}
	defer f.Close()

	centers, err := ReadCostCenters(f)
	if err != nil {
		return nil, fmt.Errorf("reading cost centers: %w", err)
	}
	return NewService(centers), nil
}

// Create adds a cost center. Codes are not checked for uniqueness;
// duplicates are accepted.
func (s *Service) Create(code, name, description string) model.CostCenter {
	cc := model.CostCenter{
		ID:          s.nextID,
		Code:        code,
		Name:        name,
		Description: description,
	}
	s.nextID++
	s.centers = append(s.centers, cc)
	s.byID[cc.ID] = cc
	return cc
}

// All returns all cost centers in creation order.
func (s *Service) All() []model.CostCenter {
	out := make([]model.CostCenter, len(s.centers))
	copy(out, s.centers)
	return out
}

// Get returns a cost center by ID.
func (s *Service) Get(id int) (model.CostCenter, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Save writes cost centers to accounts/cost-centers.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "cost-centers.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cost centers file: %w", err)
	}
	defer f.Close()

	if err := WriteCostCenters(f, s.centers); err != nil {
		return fmt.Errorf("writing cost centers: %w", err)
	}
	return nil
}

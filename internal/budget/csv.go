package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const (
	numFields  = 4
	colID      = 0
	colAcctID  = 1
	colYear    = 2
	colMonthly = 3
)

// ReadBudgets reads budgets.csv.
func ReadBudgets(r io.Reader) ([]model.Budget, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budgets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var budgets []model.Budget
	for i, rec := range records[1:] {
		b, err := unmarshalBudget(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// WriteBudgets writes budgets.csv.
func WriteBudgets(w io.Writer, budgets []model.Budget) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"budget_id", "account_id", "year", "monthly_amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range budgets {
		row := []string{
			strconv.Itoa(b.ID),
			strconv.Itoa(b.AccountID),
			strconv.Itoa(b.Year),
			b.MonthlyAmount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalBudget(record []string) (model.Budget, error) {
	budgetID, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing budget_id %q: %w", record[colID], err)
	}
	accountID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}
	year, err := strconv.Atoi(record[colYear])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing year %q: %w", record[colYear], err)
	}
	monthly, err := decimal.NewFromString(record[colMonthly])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing monthly_amount %q: %w", record[colMonthly], err)
	}

	return model.Budget{
		ID:            budgetID,
		AccountID:     accountID,
		Year:          year,
		MonthlyAmount: monthly,
	}, nil
}

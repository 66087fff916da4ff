package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a parsed statement row. Amount is signed: negative is
// money leaving the bank account, positive is money arriving.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// StatementParser parses the generic statement format: a header row,
// then date,description,amount[,reference] with ISO dates.
type StatementParser struct{}

// Format returns the registry key for this parser.
func (*StatementParser) Format() string { return "statement" }

// Parse reads the statement CSV.
func (*StatementParser) Parse(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // reference column is optional

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []Transaction
	for i, rec := range records[1:] {
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected at least 3 fields, got %d", i+2, len(rec))
		}

		date, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[0], err)
		}
		amount, err := decimal.NewFromString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[2], err)
		}

		txn := Transaction{Date: date, Description: rec[1], Amount: amount}
		if len(rec) > 3 {
			txn.Reference = rec[3]
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

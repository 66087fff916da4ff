package costcenter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const (
	numFields = 4
	colID     = 0
	colCode   = 1
	colName   = 2
	colDesc   = 3
)

// ReadCostCenters reads cost-centers.csv.
func ReadCostCenters(r io.Reader) ([]model.CostCenter, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cost centers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var centers []model.CostCenter
	for i, rec := range records[1:] {
		ccID, err := strconv.Atoi(rec[colID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing cost_center_id %q: %w", i+2, rec[colID], err)
		}
		centers = append(centers, model.CostCenter{
			ID:          ccID,
			Code:        rec[colCode],
			Name:        rec[colName],
			Description: rec[colDesc],
		})
	}
	return centers, nil
}

// WriteCostCenters writes cost-centers.csv.
func WriteCostCenters(w io.Writer, centers []model.CostCenter) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"cost_center_id", "code", "name", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, cc := range centers {
		row := []string{strconv.Itoa(cc.ID), cc.Code, cc.Name, cc.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/id"
	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Header is the CSV header for journal.csv. One row per journal line;
// entry-level fields repeat on every line of the entry.
const Header = "line_id,date,entry_description,auto_generated,account_id,debit,credit,cost_center_id,line_description"

const (
	numFields     = 9
	dateFormat    = "2006-01-02"
	colLineID     = 0
	colDate       = 1
	colEntryDesc  = 2
	colAuto       = 3
	colAcctID     = 4
	colDebit      = 5
	colCredit     = 6
	colCostCenter = 7
	colLineDesc   = 8
)

// ReadEntries reads journal rows and groups them back into entries by
// their shared entry ID. Row order within the file is preserved.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.JournalEntry
	index := make(map[string]int)
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		group := id.EntryGroup(row.line.LineID)
		at, seen := index[group]
		if !seen {
			index[group] = len(entries)
			entries = append(entries, model.JournalEntry{
				ID:            group,
				Date:          row.date,
				Description:   row.entryDesc,
				AutoGenerated: row.auto,
			})
			at = index[group]
		}
		entries[at].Lines = append(entries[at].Lines, row.line)
	}
	return entries, nil
}

// AppendEntry writes one CSV row per line of the entry.
func AppendEntry(w io.Writer, entry model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, line := range entry.Lines {
		if err := cw.Write(marshalRow(entry, line)); err != nil {
			return fmt.Errorf("writing line %s: %w", line.LineID, err)
		}
	}
	return cw.Error()
}

func marshalRow(entry model.JournalEntry, line model.JournalLine) []string {
	row := make([]string, numFields)
	row[colLineID] = line.LineID
	row[colDate] = entry.Date.Format(dateFormat)
	row[colEntryDesc] = entry.Description
	row[colAuto] = strconv.FormatBool(entry.AutoGenerated)
	row[colAcctID] = strconv.Itoa(line.AccountID)
	row[colDebit] = line.Debit.StringFixed(2)
	row[colCredit] = line.Credit.StringFixed(2)
	if line.CostCenterID != 0 {
		row[colCostCenter] = strconv.Itoa(line.CostCenterID)
	}
	row[colLineDesc] = line.Description
	return row
}

type journalRow struct {
	date      time.Time
	entryDesc string
	auto      bool
	line      model.JournalLine
}

func unmarshalRow(record []string) (journalRow, error) {
	if len(record) != numFields {
		return journalRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return journalRow{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}
	auto, err := strconv.ParseBool(record[colAuto])
	if err != nil {
		return journalRow{}, fmt.Errorf("parsing auto_generated %q: %w", record[colAuto], err)
	}
	acctID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return journalRow{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}
	debit, err := decimal.NewFromString(record[colDebit])
	if err != nil {
		return journalRow{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
	}
	credit, err := decimal.NewFromString(record[colCredit])
	if err != nil {
		return journalRow{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
	}

	var costCenterID int
	if record[colCostCenter] != "" {
		costCenterID, err = strconv.Atoi(record[colCostCenter])
		if err != nil {
			return journalRow{}, fmt.Errorf("parsing cost_center_id %q: %w", record[colCostCenter], err)
		}
	}

	return journalRow{
		date:      date,
		entryDesc: record[colEntryDesc],
		auto:      auto,
		line: model.JournalLine{
			LineID:       record[colLineID],
			AccountID:    acctID,
			Debit:        debit,
			Credit:       credit,
			CostCenterID: costCenterID,
			Description:  record[colLineDesc],
		},
	}, nil
}

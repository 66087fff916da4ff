// Package activitylog appends audit rows for ledger writes (postings,
// imports, chart changes) to logs/activity.csv under the books root. The
// log is informational; the journal itself stays the source of truth.
package activitylog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	Action    string // "post", "import", "account", "budget", ...
	EntryID   string // journal entry ID, if the action produced one
	Details   string
}

// Header is the CSV header for activity.csv.
const Header = "timestamp,action,entry_id,details"

const (
	numFields    = 4
	logFile      = "logs/activity.csv"
	colTimestamp = 0
	colAction    = 1
	colEntryID   = 2
	colDetails   = 3
)

// Append writes one entry to the log, creating the file and header on
// first use.
func Append(booksRoot string, e Entry) error {
	path := filepath.Join(booksRoot, filepath.FromSlash(logFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(marshalEntry(e)); err != nil {
		return fmt.Errorf("writing activity row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all log entries, oldest first. A missing log yields nil.
func Read(booksRoot string) ([]Entry, error) {
	path := filepath.Join(booksRoot, filepath.FromSlash(logFile))
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		ts, err := time.Parse(time.RFC3339, rec[colTimestamp])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing timestamp %q: %w", i+2, rec[colTimestamp], err)
		}
		entries = append(entries, Entry{
			Timestamp: ts,
			Action:    rec[colAction],
			EntryID:   rec[colEntryID],
			Details:   rec[colDetails],
		})
	}
	return entries, nil
}

func marshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colEntryID] = e.EntryID
	row[colDetails] = e.Details
	return row
}

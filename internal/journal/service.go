// Package journal is the append-only ledger of balanced journal entries.
// Posting is the only write path: a draft is validated, converted into an
// immutable entry, and appended to the month's journal.csv. Entries are
// never mutated or removed; every balance is derived on read.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bizbooks-dev/bizbooks/internal/id"
	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Service provides posting and reading over the journal files.
type Service struct {
	booksRoot string
	accounts  AccountChecker
}

// NewService creates a journal Service.
func NewService(booksRoot string, accounts AccountChecker) *Service {
	return &Service{booksRoot: booksRoot, accounts: accounts}
}

// Post validates a draft and appends it to the ledger. On success the
// persisted entry is returned with its generated ID; on failure the
// ledger is untouched and nothing is persisted.
func (s *Service) Post(draft EntryDraft) (model.JournalEntry, error) {
	if err := Validate(draft, s.accounts); err != nil {
		return model.JournalEntry{}, err
	}

	year := draft.Date.Year()
	month := int(draft.Date.Month())

	seq, err := s.NextEntrySeq(year, month)
	if err != nil {
		return model.JournalEntry{}, err
	}

	entryID := id.FormatEntryID(year, month, seq)
	entry := model.JournalEntry{
		ID:            entryID,
		Date:          draft.Date,
		Description:   draft.Description,
		AutoGenerated: draft.AutoGenerated,
		Lines:         make([]model.JournalLine, len(draft.Lines)),
	}
	for i, line := range draft.Lines {
		entry.Lines[i] = model.JournalLine{
			LineID:       id.FormatLineID(entryID, i),
			AccountID:    line.AccountID,
			Debit:        line.Debit,
			Credit:       line.Credit,
			CostCenterID: line.CostCenterID,
			Description:  line.Description,
		}
	}

	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return model.JournalEntry{}, fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return model.JournalEntry{}, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntry(f, entry); err != nil {
		return model.JournalEntry{}, fmt.Errorf("appending entry: %w", err)
	}

	return entry, nil
}

// ReadMonth reads all entries for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.JournalEntry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

// Entries reads every journal file under the books root. No ordering is
// guaranteed beyond file-walk order; callers that need a display order
// sort for themselves.
func (s *Service) Entries() ([]model.JournalEntry, error) {
	var paths []string
	err := filepath.WalkDir(s.booksRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == "journal.csv" {
			paths = append(paths, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walking journal files: %w", err)
	}
	sort.Strings(paths)

	var all []model.JournalEntry
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal %s: %w", path, err)
		}
		entries, err := ReadEntries(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading journal %s: %w", path, err)
		}
		all = append(all, entries...)
	}
	return all, nil
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	entries, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, entry := range entries {
		_, _, seq, err := id.ParseEntryID(entry.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.booksRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

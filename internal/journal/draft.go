package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineDraft is one loosely-typed posting row as collected at the
// boundary, before validation. A draft line may carry both sides or
// neither; only the entry-level balance is enforced at post time.
type LineDraft struct {
	AccountID    int
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	CostCenterID int
	Description  string
}

// EntryDraft is a journal entry as submitted for posting. It is
// validated and converted into an immutable model.JournalEntry by
// Service.Post; the ledger never holds partially-valid data.
type EntryDraft struct {
	Date          time.Time
	Description   string
	AutoGenerated bool
	Lines         []LineDraft
}

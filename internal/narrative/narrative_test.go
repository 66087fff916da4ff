package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

type stubGenerator struct {
	prompt string
	reply  string
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func sampleTrialBalance() reports.TrialBalance {
	return reports.TrialBalance{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Rows: []reports.TrialBalanceRow{
			{Code: "101", Name: "Cash", Type: model.AccountTypeAsset,
				Debit: decimal.NewFromInt(500), Balance: decimal.NewFromInt(500)},
			{Code: "401", Name: "Sales", Type: model.AccountTypeRevenue,
				Credit: decimal.NewFromInt(500), Balance: decimal.NewFromInt(500)},
		},
		TotalDebit:  decimal.NewFromInt(500),
		TotalCredit: decimal.NewFromInt(500),
	}
}

func TestSummarize(t *testing.T) {
	gen := &stubGenerator{reply: "Cash is healthy."}

	text, err := Summarize(context.Background(), gen, sampleTrialBalance())
	require.NoError(t, err)
	assert.Equal(t, "Cash is healthy.", text)

	assert.True(t, strings.Contains(gen.prompt, "101 | Cash | asset | 500.00 | 0.00 | 500.00"))
	assert.True(t, strings.Contains(gen.prompt, "2025-01-01"))
	assert.True(t, strings.Contains(gen.prompt, "totals | | | 500.00 | 500.00"))
}

func TestSummarize_GeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}

	_, err := Summarize(context.Background(), gen, sampleTrialBalance())
	assert.Error(t, err)
}

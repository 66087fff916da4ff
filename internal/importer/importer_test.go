package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `date,description,amount,reference
2025-01-05,ACME SUPPLIES,-120.50,INV-9912
2025-01-07,CLIENT PAYMENT,1500.00
2025-01-08,BANK FEE,0.00
`

func TestStatementParser(t *testing.T) {
	p := &StatementParser{}
	txns, err := p.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "ACME SUPPLIES", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("-120.50")))
	assert.Equal(t, "INV-9912", txns[0].Reference)
	assert.Equal(t, "", txns[1].Reference)
}

func TestStatementParser_BadRow(t *testing.T) {
	p := &StatementParser{}
	_, err := p.Parse(strings.NewReader("date,description,amount\nnot-a-date,x,5\n"))
	assert.Error(t, err)
}

func TestDraftEntries(t *testing.T) {
	p := &StatementParser{}
	txns, err := p.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)

	drafts, err := DraftEntries(txns, 1, 13)
	require.NoError(t, err)
	// The zero-amount fee row is dropped.
	require.Len(t, drafts, 2)

	// Money out: clearing debited, bank credited.
	out := drafts[0]
	assert.True(t, out.AutoGenerated)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, 13, out.Lines[0].AccountID)
	assert.True(t, out.Lines[0].Debit.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, 1, out.Lines[1].AccountID)
	assert.True(t, out.Lines[1].Credit.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, "INV-9912", out.Lines[0].Description)

	// Money in: bank debited, clearing credited.
	in := drafts[1]
	assert.Equal(t, 1, in.Lines[0].AccountID)
	assert.True(t, in.Lines[0].Debit.Equal(decimal.NewFromInt(1500)))

	// Every draft balances.
	for _, d := range drafts {
		debit, credit := decimal.Zero, decimal.Zero
		for _, l := range d.Lines {
			debit = debit.Add(l.Debit)
			credit = credit.Add(l.Credit)
		}
		assert.True(t, debit.Equal(credit))
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("statement"))
	assert.NotNil(t, r.Get("STATEMENT"))
	assert.Nil(t, r.Get("unknown"))

	assert.Panics(t, func() { r.Register(&StatementParser{}) })
}

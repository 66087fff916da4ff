package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/accounts"
	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testChart(t *testing.T) *accounts.Service {
	t.Helper()
	svc := accounts.NewService(nil)
	for _, a := range []struct {
		code string
		name string
		typ  model.AccountType
	}{
		{"101", "Cash", model.AccountTypeAsset},
		{"401", "Sales", model.AccountTypeRevenue},
		{"510", "Salaries", model.AccountTypeExpense},
	} {
		_, err := svc.Create(a.code, a.name, a.typ, "")
		require.NoError(t, err)
	}
	return svc
}

func TestCreate(t *testing.T) {
	chart := testChart(t)
	svc := NewService(nil, chart)

	sales, _ := chart.GetByCode("401")
	b, err := svc.Create(sales.ID, 2024, dec("1000"))
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
	assert.True(t, b.Yearly().Equal(dec("12000")))
}

func TestCreate_InvalidAccount(t *testing.T) {
	chart := testChart(t)
	svc := NewService(nil, chart)

	// Unknown account.
	_, err := svc.Create(99, 2024, dec("100"))
	var invalid InvalidAccountError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 99, invalid.AccountID)

	// Asset account: not budgetable.
	cash, _ := chart.GetByCode("101")
	_, err = svc.Create(cash.ID, 2024, dec("100"))
	assert.ErrorAs(t, err, &invalid)
}

func TestCreate_InvalidAmount(t *testing.T) {
	chart := testChart(t)
	svc := NewService(nil, chart)
	sales, _ := chart.GetByCode("401")

	for _, amount := range []string{"0", "-50"} {
		_, err := svc.Create(sales.ID, 2024, dec(amount))
		var invalid InvalidAmountError
		assert.ErrorAs(t, err, &invalid, "amount %s", amount)
	}
	assert.Empty(t, svc.All())
}

func TestCreate_DuplicatesAllowed(t *testing.T) {
	chart := testChart(t)
	svc := NewService(nil, chart)
	salaries, _ := chart.GetByCode("510")

	_, err := svc.Create(salaries.ID, 2024, dec("1000"))
	require.NoError(t, err)
	_, err = svc.Create(salaries.ID, 2024, dec("500"))
	require.NoError(t, err)

	assert.Len(t, svc.ForYear(2024), 2)
	assert.Empty(t, svc.ForYear(2023))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	chart := testChart(t)
	svc := NewService(nil, chart)
	salaries, _ := chart.GetByCode("510")

	_, err := svc.Create(salaries.ID, 2024, dec("1250.50"))
	require.NoError(t, err)
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir, chart)
	require.NoError(t, err)
	require.Len(t, loaded.All(), 1)
	assert.True(t, loaded.All()[0].MonthlyAmount.Equal(dec("1250.50")))

	b, err := loaded.Create(salaries.ID, 2025, dec("1300"))
	require.NoError(t, err)
	assert.Equal(t, 2, b.ID)
}

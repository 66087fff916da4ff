package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("Acme Widgets")
	cfg.Display.Currency = "EUR"
	cfg.Import.BankAccountID = 1
	cfg.Import.ClearingAccountID = 13
	cfg.Narrative.Model = "gemini-2.0-flash"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefault(t *testing.T) {
	cfg := Default("Acme")
	assert.Equal(t, "Acme", cfg.Business.Name)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

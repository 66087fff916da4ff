package commands

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func initBooks(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Acme Widgets")
	require.NoError(t, err)
	return dir
}

func TestInit(t *testing.T) {
	dir := initBooks(t)

	for _, path := range []string{
		"books.yaml",
		filepath.Join("accounts", "chart-of-accounts.csv"),
	} {
		assert.FileExists(t, filepath.Join(dir, path), path)
	}
	assert.DirExists(t, filepath.Join(dir, ".git"))
}

func TestInit_Twice(t *testing.T) {
	dir := initBooks(t)
	_, err := run(t, "init", dir, "--name", "Acme Widgets")
	assert.Error(t, err)
}

func TestPostAndReports(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "post", "--books", dir,
		"--date", "2025-03-10", "--desc", "Cash sale",
		"--debit", "101=500.00", "--credit", "401=500.00")
	require.NoError(t, err)

	out, err := run(t, "entries", "--books", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-001")
	assert.Contains(t, out, "Cash sale")

	out, err = run(t, "report", "trial-balance", "--books", dir,
		"--from", "2025-01-01", "--to", "2025-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "Sales")
	assert.Contains(t, out, "$500.00")

	out, err = run(t, "report", "income", "--books", dir,
		"--from", "2025-01-01", "--to", "2025-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "NET INCOME")
}

func TestPost_Unbalanced(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "post", "--books", dir,
		"--date", "2025-03-10",
		"--debit", "101=500.00", "--credit", "401=400.00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not balance")
}

func TestPost_NoLines(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "post", "--books", dir, "--date", "2025-03-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no lines")
}

func TestAccountAddList(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "account", "add", "--books", dir,
		"--code", "601", "--name", "Marketing", "--type", "expense")
	require.NoError(t, err)

	// Duplicate code rejected.
	_, err = run(t, "account", "add", "--books", dir,
		"--code", "601", "--name", "Marketing 2", "--type", "expense")
	require.Error(t, err)

	out, err := run(t, "account", "list", "--books", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Marketing")
}

func TestBudgetFlow(t *testing.T) {
	dir := initBooks(t)

	_, err := run(t, "budget", "add", "--books", dir,
		"--account", "510", "--year", "2024", "--monthly", "1000")
	require.NoError(t, err)

	// Asset accounts cannot be budgeted.
	_, err = run(t, "budget", "add", "--books", dir,
		"--account", "101", "--year", "2024", "--monthly", "1000")
	require.Error(t, err)

	out, err := run(t, "report", "budget", "--books", dir, "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Salaries")
}

package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bizbooks-dev/bizbooks/internal/accounts"
	"github.com/bizbooks-dev/bizbooks/internal/activitylog"
	"github.com/bizbooks-dev/bizbooks/internal/budget"
	"github.com/bizbooks-dev/bizbooks/internal/config"
	"github.com/bizbooks-dev/bizbooks/internal/costcenter"
	"github.com/bizbooks-dev/bizbooks/internal/gitops"
	"github.com/bizbooks-dev/bizbooks/internal/journal"
)

// books bundles the opened stores for one books directory.
type books struct {
	root        string
	cfg         *config.Config
	accounts    *accounts.Service
	costCenters *costcenter.Service
	budgets     *budget.Service
	journal     *journal.Service
}

// openBooks loads every store from a books directory.
func openBooks(dir string) (*books, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening books at %s: %w", root, err)
	}

	accts, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}
	centers, err := costcenter.Load(root)
	if err != nil {
		return nil, err
	}
	budgets, err := budget.Load(root, accts)
	if err != nil {
		return nil, err
	}

	return &books{
		root:        root,
		cfg:         cfg,
		accounts:    accts,
		costCenters: centers,
		budgets:     budgets,
		journal:     journal.NewService(root, accts),
	}, nil
}

// recordActivity appends an audit row and, when configured, commits the
// books directory. Failures here are logged, not fatal: the write that
// triggered them already succeeded.
func (b *books) recordActivity(action, entryID, details string) {
	if err := activitylog.Append(b.root, activitylog.Entry{
		Timestamp: time.Now(),
		Action:    action,
		EntryID:   entryID,
		Details:   details,
	}); err != nil {
		slog.Warn("activity log append failed", "error", err)
	}

	if !b.cfg.Git.AutoCommit || !gitops.IsRepo(b.root) {
		return
	}
	message := action
	if entryID != "" {
		message = fmt.Sprintf("%s %s", action, entryID)
	}
	hash, err := gitops.CommitBooks(b.root, message, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
	if err != nil {
		slog.Warn("auto-commit failed", "error", err)
		return
	}
	if hash != "" {
		slog.Info("books committed", "action", action, "commit", hash)
	}
}

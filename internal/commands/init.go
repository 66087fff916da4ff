package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/accounts"
	"github.com/bizbooks-dev/bizbooks/internal/config"
	"github.com/bizbooks-dev/bizbooks/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, currency)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "display currency code")

	return cmd
}

func runInit(dir, name, currency string) error {
	for _, sub := range []string{"accounts", "logs", "import"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("creating %s dir: %w", sub, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("books already initialized at %s", dir)
	}

	cfg := config.Default(name)
	cfg.Display.Currency = currency
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	chart := accounts.NewService(accounts.DefaultChart())
	if err := chart.Save(dir); err != nil {
		return err
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	if cfg.Git.AutoCommit {
		if _, err := gitops.CommitBooks(dir, "init books", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized books for %q in %s\n", name, dir)
	return nil
}

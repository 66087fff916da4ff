package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bizbooks",
		Short:   "Double-entry books for a small business",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newCostCenterCommand())
	rootCmd.AddCommand(newBudgetCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newEntriesCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSummarizeCommand())

	return rootCmd
}

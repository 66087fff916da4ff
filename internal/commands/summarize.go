package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/narrative"
	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

func newSummarizeCommand() *cobra.Command {
	var booksDir, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Generate a narrative summary of the trial balance",
		Long: `Generate a short prose summary of the trial balance with a
text-generation model. Credentials are read from the environment the way
the Gemini client expects (GEMINI_API_KEY or application default
credentials); the model is taken from narrative.model in books.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(booksDir)
			if err != nil {
				return err
			}
			from, to, err := reportPeriod(fromStr, toStr)
			if err != nil {
				return err
			}
			entries, err := b.journal.Entries()
			if err != nil {
				return err
			}

			tb := reports.BuildTrialBalance(entries, b.accounts, from, to)
			if len(tb.Rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity in the period; nothing to summarize.")
				return nil
			}

			gen, err := narrative.NewGemini(cmd.Context(), b.cfg.Narrative.Model)
			if err != nil {
				return err
			}
			text, err := narrative.Summarize(cmd.Context(), gen, tb)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books", ".", "books directory")
	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD")
	return cmd
}

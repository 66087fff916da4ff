// Package narrative turns trial-balance rows into a prose summary using
// an external text-generation model. The ledger core treats the model as
// an opaque report-to-text function: it either returns a string or fails.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bizbooks-dev/bizbooks/internal/reports"
)

// DefaultModel is the model used when the config does not name one.
const DefaultModel = "gemini-2.0-flash"

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini is a Generator backed by the Gemini API. Credentials come from
// the environment, as with any genai client.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini generator for the given model name.
func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate sends the prompt and returns the first candidate's text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", g.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Summarize renders the trial balance into a prompt and asks the
// generator for a short narrative.
func Summarize(ctx context.Context, gen Generator, tb reports.TrialBalance) (string, error) {
	return gen.Generate(ctx, Prompt(tb))
}

// Prompt builds the model prompt for a trial balance.
func Prompt(tb reports.TrialBalance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an accountant. Summarize this trial balance for %s to %s in a few short paragraphs for a business owner. Mention notable balances and overall activity. Amounts share one currency.\n\n",
		tb.From.Format("2006-01-02"), tb.To.Format("2006-01-02"))
	b.WriteString("code | name | type | debit | credit | balance\n")
	for _, row := range tb.Rows {
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s | %s\n",
			row.Code, row.Name, row.Type,
			row.Debit.StringFixed(2), row.Credit.StringFixed(2), row.Balance.StringFixed(2))
	}
	fmt.Fprintf(&b, "totals | | | %s | %s |\n", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2))
	return b.String()
}

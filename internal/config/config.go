package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file kept at the books root.
const FileName = "books.yaml"

// Config represents the top-level books.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Fiscal    FiscalConfig    `yaml:"fiscal"`
	Display   DisplayConfig   `yaml:"display"`
	Import    ImportConfig    `yaml:"import,omitempty"`
	Narrative NarrativeConfig `yaml:"narrative,omitempty"`
	Git       GitConfig       `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// DisplayConfig controls presentation-only formatting. The ledger core
// is single-currency; this affects rendering, never stored amounts.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// ImportConfig maps statement imports onto the chart of accounts.
type ImportConfig struct {
	BankAccountID     int `yaml:"bank_account_id"`
	ClearingAccountID int `yaml:"clearing_account_id"`
}

// NarrativeConfig selects the text-generation model for summaries.
type NarrativeConfig struct {
	Model string `yaml:"model"`
}

// GitConfig controls git integration for the books directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a books.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books dir.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Display: DisplayConfig{
			Currency: "USD",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Bizbooks",
			AuthorEmail: "books@bizbooks.dev",
		},
	}
}

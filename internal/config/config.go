// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "unicode/utf8"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// InputConfig describes where the quarterly data lives and how to read it.
type InputConfig struct {
	// Quarters is a comma-separated list of extracted quarter directories,
	// processed in order.
	Quarters []string `env:"FAERS_QUARTERS" envAlt:"FAERS_DATA_DIRS" default:"faers_ascii_2024Q1/ASCII,faers_ascii_2024Q2/ASCII,faers_ascii_2024Q3/ASCII,faers_ascii_2024Q4/ASCII"`

	// Delimiter is the single field separator of the ASCII files (default: $)
	Delimiter string `env:"FAERS_DELIMITER" default:"$"`

	// BudgetsFile replaces the built-in budget tables when set (YAML)
	BudgetsFile string `env:"FAERS_BUDGETS_FILE"`
}

// OutputConfig controls the optional report artifacts.
type OutputConfig struct {
	// ChartPath is where the HTML scatter chart is written; empty disables it
	ChartPath string `env:"FAERS_CHART_PATH" default:"faers_budget.html"`

	// ParquetPath is where the output tables are exported; empty disables it
	ParquetPath string `env:"FAERS_PARQUET_PATH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DelimiterRune returns the configured delimiter as a rune.
// Only meaningful after Validate succeeded.
func (c *InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

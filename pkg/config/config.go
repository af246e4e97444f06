// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strings"
)

// Default file locations. The cleaner is designed to run with no arguments
// against these paths; a CLI wrapper can override them via the environment.
const (
	DefaultInputPath  = "data/raw/sales_data_raw.csv"
	DefaultOutputPath = "data/processed/sales_data_clean.csv"
)

// Config represents the application configuration
type Config struct {
	// File locations
	InputPath  string
	OutputPath string

	// Cleaning settings
	NumericColumns   []string // Columns coerced to numbers and required positive
	DedupKeyColumns  []string // Columns forming the duplicate-detection key
	TitleCaseColumns []string // Text columns standardized to title case

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables, falling back to
// the fixed defaults the pipeline was designed around
func LoadConfig() (*Config, error) {
	cfg := &Config{
		InputPath:        getEnv("SALES_INPUT_PATH", DefaultInputPath),
		OutputPath:       getEnv("SALES_OUTPUT_PATH", DefaultOutputPath),
		NumericColumns:   getEnvAsStringSlice("SALES_NUMERIC_COLUMNS", []string{"price", "qty"}),
		DedupKeyColumns:  getEnvAsStringSlice("SALES_DEDUP_KEYS", []string{"prodname", "price", "qty"}),
		TitleCaseColumns: getEnvAsStringSlice("SALES_TITLECASE_COLUMNS", []string{"category", "prodname"}),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}

	if c.OutputPath == "" {
		return errors.New("output path is required")
	}

	if len(c.NumericColumns) == 0 {
		return errors.New("at least one numeric column is required")
	}

	for _, col := range c.NumericColumns {
		if col != strings.ToLower(col) || strings.ContainsAny(col, " \t") {
			return errors.New("numeric column names must be in normalized form: " + col)
		}
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsStringSlice parses a comma-separated environment variable,
// trimming whitespace around each entry
func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result []string
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}

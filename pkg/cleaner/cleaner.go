// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"

	"go.uber.org/zap"
)

// Cleaner applies the cleaning stages to a table. Stages mutate the table in
// place and return reports; they never share state with each other, so the
// pipeline driver controls ordering.
type Cleaner struct {
	logger           *zap.Logger
	numericColumns   []string
	dedupKeyColumns  []string
	titleCaseColumns []string
}

// NewCleaner creates a Cleaner for the given numeric column set
func NewCleaner(
	logger *zap.Logger,
	numericColumns []string,
	dedupKeyColumns []string,
	titleCaseColumns []string,
) (*Cleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if len(numericColumns) == 0 {
		return nil, errors.New("at least one numeric column is required")
	}

	return &Cleaner{
		logger:           logger,
		numericColumns:   numericColumns,
		dedupKeyColumns:  dedupKeyColumns,
		titleCaseColumns: titleCaseColumns,
	}, nil
}

// isNumericColumn reports whether a normalized label is a coercion target
func (c *Cleaner) isNumericColumn(label string) bool {
	for _, col := range c.numericColumns {
		if col == label {
			return true
		}
	}
	return false
}

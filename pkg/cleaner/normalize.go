// pkg/cleaner/normalize.go
package cleaner

import (
	"strings"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// NormalizeLabel converts a raw column label to its canonical form:
// surrounding whitespace removed, lowercased, each internal run of whitespace
// collapsed to a single underscore. The transform is idempotent.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}

// NormalizeColumns rewrites every column label of the table to its normalized
// form, preserving column order and re-keying all rows. Two distinct raw
// labels normalizing to the same output label is a SchemaError; keeping the
// last occurrence silently would drop a column with no diagnostic.
func (c *Cleaner) NormalizeColumns(t *model.Table) error {
	normalized := make([]string, len(t.Columns))
	seen := make(map[string]string, len(t.Columns))

	for i, raw := range t.Columns {
		label := NormalizeLabel(raw)
		if prev, exists := seen[label]; exists {
			return &model.SchemaError{
				Reason:  "labels collide after normalization",
				Columns: []string{prev, raw},
			}
		}
		seen[label] = raw
		normalized[i] = label
	}

	for idx, row := range t.Rows {
		rec := make(model.Row, len(row))
		for i, raw := range t.Columns {
			rec[normalized[i]] = row[raw]
		}
		t.Rows[idx] = rec
	}
	t.Columns = normalized

	c.logger.Info("Normalized column labels", zap.Strings("columns", t.Columns))
	return nil
}

// RequireColumns verifies the table contains every expected column after
// normalization, turning the implicit schema assumption into an explicit,
// reported error.
func (c *Cleaner) RequireColumns(t *model.Table) error {
	var missing []string
	for _, col := range c.numericColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &model.SchemaError{
			Reason:  "required columns absent",
			Columns: missing,
		}
	}
	return nil
}

// pkg/cleaner/filter.go
package cleaner

import (
	"strings"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// DropMissing removes every row whose numeric columns hold the missing marker.
// It must run before the validity filter: a missing marker is not comparable
// to zero.
func (c *Cleaner) DropMissing(t *model.Table) model.FilterReport {
	report := model.FilterReport{Stage: "missing_filter", RowsIn: t.RowCount()}

	kept := t.Rows[:0]
	for _, row := range t.Rows {
		complete := true
		for _, col := range c.numericColumns {
			if model.IsMissing(row[col]) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	report.RowsOut = t.RowCount()
	report.RowsDropped = report.RowsIn - report.RowsOut

	c.logger.Info("Dropped rows with missing numeric values",
		zap.Int("rows_in", report.RowsIn),
		zap.Int("rows_out", report.RowsOut),
		zap.Int("rows_dropped", report.RowsDropped))

	return report
}

// TrimText normalizes every text cell of the surviving rows: stray quotes are
// removed, surrounding whitespace is stripped, and internal whitespace runs
// collapse to a single space. Cell casing is preserved; only column labels are
// lowercased, never values.
func (c *Cleaner) TrimText(t *model.Table) {
	for _, col := range t.Columns {
		if c.isNumericColumn(col) {
			continue
		}
		for _, row := range t.Rows {
			if s, ok := row[col].(string); ok {
				row[col] = cleanText(s)
			}
		}
	}

	c.logger.Info("Trimmed whitespace in text columns")
}

// DropInvalid removes rows where any numeric column is zero or negative.
// Zero is rejected alongside negatives: a transaction with no quantity or no
// price did not happen.
func (c *Cleaner) DropInvalid(t *model.Table) model.FilterReport {
	report := model.FilterReport{Stage: "validity_filter", RowsIn: t.RowCount()}

	kept := t.Rows[:0]
	for _, row := range t.Rows {
		valid := true
		for _, col := range c.numericColumns {
			d, ok := model.NumericCell(row[col])
			if !ok || d.Sign() <= 0 {
				valid = false
				break
			}
		}
		if valid {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	report.RowsOut = t.RowCount()
	report.RowsDropped = report.RowsIn - report.RowsOut

	c.logger.Info("Dropped rows with non-positive numeric values",
		zap.Int("rows_in", report.RowsIn),
		zap.Int("rows_out", report.RowsOut),
		zap.Int("rows_dropped", report.RowsDropped))

	return report
}

// cleanText scrubs a single text cell
func cleanText(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	return strings.Join(strings.Fields(s), " ")
}

// pkg/cleaner/dedup.go
package cleaner

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Deduplicate removes duplicate rows, keeping the first occurrence. The
// business key is the configured key column set; rows missing a key column
// entirely pass through unkeyed. Category and date deliberately stay out of
// the default key so miscategorized duplicates still collapse.
func (c *Cleaner) Deduplicate(t *model.Table) model.FilterReport {
	report := model.FilterReport{Stage: "duplicate_filter", RowsIn: t.RowCount()}

	if len(c.dedupKeyColumns) == 0 {
		report.RowsOut = report.RowsIn
		return report
	}

	seen := make(map[uint64]struct{}, t.RowCount())
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		key, ok := c.rowKey(row)
		if !ok {
			kept = append(kept, row)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	t.Rows = kept

	report.RowsOut = t.RowCount()
	report.RowsDropped = report.RowsIn - report.RowsOut

	c.logger.Info("Removed duplicate rows",
		zap.Int("rows_in", report.RowsIn),
		zap.Int("rows_out", report.RowsOut),
		zap.Int("rows_dropped", report.RowsDropped))

	return report
}

// rowKey hashes the key columns into a single comparable value. Fields are
// joined with a separator that cannot occur in cleaned cell text.
func (c *Cleaner) rowKey(row model.Row) (uint64, bool) {
	var b strings.Builder
	for _, col := range c.dedupKeyColumns {
		v, exists := row[col]
		if !exists {
			return 0, false
		}
		if b.Len() > 0 {
			b.WriteByte('\x1f')
		}
		switch t := v.(type) {
		case nil:
			b.WriteByte('\x00')
		case string:
			b.WriteString(t)
		default:
			b.WriteString(fmt.Sprint(t))
		}
	}
	return xxh3.HashString(b.String()), true
}

// pkg/cleaner/coerce.go
package cleaner

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Coerce converts every cell of the configured numeric columns from raw text
// to a decimal value. Surrounding whitespace is ignored; a value that does not
// parse as a decimal number, or an empty value, becomes the missing marker.
// Coercion never fails a row; unusable values are only counted.
func (c *Cleaner) Coerce(t *model.Table) *model.CoerceReport {
	report := model.NewCoerceReport()

	for _, col := range c.numericColumns {
		for _, row := range t.Rows {
			value, converted := coerceDecimal(row[col])
			if !converted {
				report.Record(col)
				row[col] = nil
				continue
			}
			row[col] = value
		}
	}

	for col, count := range report.MissingByColumn {
		c.logger.Info("Coerced column to numeric",
			zap.String("column", col),
			zap.Int("values_missing", count))
	}

	return report
}

// coerceDecimal attempts to interpret a raw cell as a decimal number
func coerceDecimal(v any) (decimal.Decimal, bool) {
	s, ok := v.(string)
	if !ok {
		// Already coerced or already missing.
		if d, isNum := v.(decimal.Decimal); isNum {
			return d, true
		}
		return decimal.Decimal{}, false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

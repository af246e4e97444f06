// pkg/cleaner/enrich.go
package cleaner

import (
	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// RevenueColumn is the label of the derived column appended by AddRevenue.
const RevenueColumn = "revenue"

// AddRevenue computes revenue as the exact product of the first two numeric
// columns (price and quantity) for every surviving row and appends it as the
// last column. No rounding is applied; the product keeps the full precision
// of its inputs.
func (c *Cleaner) AddRevenue(t *model.Table) error {
	if t.HasColumn(RevenueColumn) {
		return &model.SchemaError{
			Reason:  "derived column already present",
			Columns: []string{RevenueColumn},
		}
	}
	if len(c.numericColumns) < 2 {
		return &model.SchemaError{
			Reason:  "revenue needs a price and a quantity column",
			Columns: c.numericColumns,
		}
	}

	priceCol, qtyCol := c.numericColumns[0], c.numericColumns[1]
	for _, row := range t.Rows {
		price, okP := model.NumericCell(row[priceCol])
		qty, okQ := model.NumericCell(row[qtyCol])
		if !okP || !okQ {
			// Filters guarantee both are present; a gap here is a bug upstream.
			return &model.SchemaError{
				Reason:  "uncoerced numeric value reached enrichment",
				Columns: []string{priceCol, qtyCol},
			}
		}
		row[RevenueColumn] = price.Mul(qty)
	}
	t.AppendColumn(RevenueColumn)

	c.logger.Info("Added revenue column", zap.Int("rows", t.RowCount()))
	return nil
}

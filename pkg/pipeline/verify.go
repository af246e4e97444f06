// pkg/pipeline/verify.go
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/cleaner"
	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Verifier checks the cleaned table against the pipeline's invariants before
// anything is written: row accounting balances, numeric values are strictly
// positive, revenue equals price times quantity exactly, and the derived
// column sits last in the column order.
type Verifier struct {
	numericColumns []string
	logger         *zap.Logger
}

// NewVerifier creates a verifier for the given numeric column set
func NewVerifier(numericColumns []string, logger *zap.Logger) *Verifier {
	return &Verifier{
		numericColumns: numericColumns,
		logger:         logger,
	}
}

// Verify validates the table and the run accounting. A violation means a bug
// in a stage, so it aborts the run rather than writing suspect output.
func (v *Verifier) Verify(table *model.Table, result *RunResult) error {
	if err := v.verifyAccounting(table, result); err != nil {
		return err
	}
	if err := v.verifyColumnOrder(table); err != nil {
		return err
	}
	if err := v.verifyRows(table); err != nil {
		return err
	}

	v.logger.Info("Verified cleaned table",
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", len(table.Columns)))
	return nil
}

// verifyAccounting checks rows_out + rows_dropped == rows_in across stages
func (v *Verifier) verifyAccounting(table *model.Table, result *RunResult) error {
	for _, report := range result.FilterReports {
		if !report.Balanced() {
			return fmt.Errorf("stage %s accounting unbalanced: %d in, %d out, %d dropped",
				report.Stage, report.RowsIn, report.RowsOut, report.RowsDropped)
		}
	}

	expected := result.RowsLoaded - result.RowsDropped()
	if table.RowCount() != expected {
		return fmt.Errorf("row accounting unbalanced: %d loaded, %d dropped, %d remain",
			result.RowsLoaded, result.RowsDropped(), table.RowCount())
	}
	return nil
}

// verifyColumnOrder checks the derived column was appended last
func (v *Verifier) verifyColumnOrder(table *model.Table) error {
	if len(table.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}
	if last := table.Columns[len(table.Columns)-1]; last != cleaner.RevenueColumn {
		return fmt.Errorf("expected %s as last column, got %s", cleaner.RevenueColumn, last)
	}
	return nil
}

// verifyRows checks strict positivity and the revenue product on every row
func (v *Verifier) verifyRows(table *model.Table) error {
	if len(v.numericColumns) < 2 {
		return fmt.Errorf("verifier needs a price and a quantity column")
	}
	priceCol, qtyCol := v.numericColumns[0], v.numericColumns[1]

	for i, row := range table.Rows {
		for _, col := range v.numericColumns {
			d, ok := model.NumericCell(row[col])
			if !ok {
				return fmt.Errorf("row %d: column %s not numeric after cleaning", i, col)
			}
			if d.Sign() <= 0 {
				return fmt.Errorf("row %d: column %s is non-positive: %s", i, col, d)
			}
		}

		revenue, ok := model.NumericCell(row[cleaner.RevenueColumn])
		if !ok {
			return fmt.Errorf("row %d: revenue missing", i)
		}
		price, _ := model.NumericCell(row[priceCol])
		qty, _ := model.NumericCell(row[qtyCol])
		if !revenue.Equal(price.Mul(qty)) {
			return fmt.Errorf("row %d: revenue %s != %s * %s", i, revenue, price, qty)
		}
	}
	return nil
}

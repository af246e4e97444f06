// pkg/model/table.go
package model

import (
	"github.com/shopspring/decimal"
)

// Row maps a column label to a cell value. Values are raw strings as loaded,
// decimal.Decimal after numeric coercion, or nil for the missing marker.
type Row map[string]any

// Table is an ordered tabular dataset held fully in memory. Columns carries
// the column order; every Row is keyed by the labels in Columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates a table with the given column order and no rows
func NewTable(columns []string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([]Row, 0),
	}
}

// RowCount returns the number of rows currently in the table
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether the table contains a column with the given label
func (t *Table) HasColumn(label string) bool {
	for _, c := range t.Columns {
		if c == label {
			return true
		}
	}
	return false
}

// AppendColumn adds a column label at the end of the column order.
// Cell values for existing rows are the caller's responsibility.
func (t *Table) AppendColumn(label string) {
	t.Columns = append(t.Columns, label)
}

// IsMissing reports whether a cell value is the missing marker.
// The marker is distinct from the numeric value zero and from the empty string
// only after coercion; before coercion every cell is a raw string.
func IsMissing(v any) bool {
	return v == nil
}

// NumericCell extracts a coerced numeric value from a cell.
// The second return is false when the cell is missing or was never coerced.
func NumericCell(v any) (decimal.Decimal, bool) {
	d, ok := v.(decimal.Decimal)
	return d, ok
}

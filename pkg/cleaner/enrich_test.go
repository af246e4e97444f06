package cleaner

import (
	"errors"
	"testing"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

func TestAddRevenue(t *testing.T) {
	c := newTestCleaner(t)
	table := &model.Table{
		Columns: []string{"price", "qty", "prodname"},
		Rows: []model.Row{
			{"price": dec("10"), "qty": dec("2"), "prodname": "Laptop"},
			{"price": dec("3.25"), "qty": dec("4"), "prodname": "Desk Mat"},
			{"price": dec("0.1"), "qty": dec("3"), "prodname": "Sticker"},
		},
	}

	if err := c.AddRevenue(table); err != nil {
		t.Fatalf("AddRevenue: %v", err)
	}

	if last := table.Columns[len(table.Columns)-1]; last != RevenueColumn {
		t.Fatalf("last column = %q, want %q", last, RevenueColumn)
	}

	for i, want := range []string{"20", "13", "0.3"} {
		revenue, ok := model.NumericCell(table.Rows[i][RevenueColumn])
		if !ok {
			t.Fatalf("row %d: revenue not numeric", i)
		}
		if !revenue.Equal(dec(want)) {
			t.Errorf("row %d: revenue = %s, want %s", i, revenue, want)
		}
		// Exactness: revenue must equal the product, not a rounding of it.
		price, _ := model.NumericCell(table.Rows[i]["price"])
		qty, _ := model.NumericCell(table.Rows[i]["qty"])
		if !revenue.Equal(price.Mul(qty)) {
			t.Errorf("row %d: revenue %s != price*qty %s", i, revenue, price.Mul(qty))
		}
	}
}

func TestAddRevenueRejectsExistingColumn(t *testing.T) {
	c := newTestCleaner(t)
	table := &model.Table{
		Columns: []string{"price", "qty", "revenue"},
		Rows:    []model.Row{},
	}

	err := c.AddRevenue(table)
	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestAddRevenueRejectsUncoercedCell(t *testing.T) {
	c := newTestCleaner(t)
	table := &model.Table{
		Columns: []string{"price", "qty"},
		Rows: []model.Row{
			{"price": "10", "qty": dec("2")},
		},
	}

	if err := c.AddRevenue(table); err == nil {
		t.Fatal("expected error for uncoerced cell")
	}
}

// pkg/cleaner/standardize.go
package cleaner

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Standardize title-cases the configured text columns so values like
// "electronics" and "Electronics" group together downstream. Columns not
// present in the table are skipped.
func (c *Cleaner) Standardize(t *model.Table) {
	caser := cases.Title(language.English)

	for _, col := range c.titleCaseColumns {
		if !t.HasColumn(col) {
			continue
		}
		for _, row := range t.Rows {
			if s, ok := row[col].(string); ok {
				row[col] = caser.String(s)
			}
		}
	}

	c.logger.Info("Standardized text casing")
}

// pkg/model/report.go
package model

// FilterReport records the outcome of a single row-dropping stage.
// Stages return these instead of mutating shared counters so the pipeline
// driver owns all reporting.
type FilterReport struct {
	Stage       string // Stage name, e.g. "missing_filter"
	RowsIn      int    // Rows entering the stage
	RowsOut     int    // Rows surviving the stage
	RowsDropped int    // Rows removed by the stage
}

// Balanced reports whether the row accounting adds up
func (r FilterReport) Balanced() bool {
	return r.RowsIn == r.RowsOut+r.RowsDropped
}

// CoerceReport records how many values became the missing marker per column
// during numeric coercion. It is diagnostic only and never alters behavior.
type CoerceReport struct {
	MissingByColumn map[string]int
}

// NewCoerceReport initializes an empty coercion report
func NewCoerceReport() *CoerceReport {
	return &CoerceReport{
		MissingByColumn: make(map[string]int),
	}
}

// Record notes one value in the given column that could not be parsed
func (r *CoerceReport) Record(column string) {
	r.MissingByColumn[column]++
}

// TotalMissing returns the number of values marked missing across all columns
func (r *CoerceReport) TotalMissing() int {
	total := 0
	for _, n := range r.MissingByColumn {
		total += n
	}
	return total
}

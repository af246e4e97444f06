// pkg/model/errors.go
package model

import (
	"fmt"
	"strings"
)

// DataSourceError indicates the input file is missing, unreadable, or not
// parseable as delimited text. It is fatal and aborts the run.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// DataSinkError indicates the output location could not be written. It is
// fatal and surfaced to the caller with no retry.
type DataSinkError struct {
	Path string
	Err  error
}

func (e *DataSinkError) Error() string {
	return fmt.Sprintf("data sink %s: %v", e.Path, e.Err)
}

func (e *DataSinkError) Unwrap() error {
	return e.Err
}

// SchemaError indicates the table's columns violate an expectation: a label
// collision after normalization, or a required column that is absent.
type SchemaError struct {
	Reason  string
	Columns []string
}

func (e *SchemaError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %s (columns: %s)", e.Reason, strings.Join(e.Columns, ", "))
}

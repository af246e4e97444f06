// pkg/csvio/sink.go
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Sink defines the interface for persisting a cleaned table
type Sink interface {
	// Write serializes the table, header first, overwriting any existing
	// file at the destination
	Write(ctx context.Context, table *model.Table) error
}

// FileSink writes a comma-delimited file with a header row
type FileSink struct {
	path   string
	logger *zap.Logger
}

// NewFileSink creates a file sink for the given path
func NewFileSink(path string, logger *zap.Logger) *FileSink {
	return &FileSink{
		path:   path,
		logger: logger,
	}
}

// Write serializes the table to the destination path. The file is written to
// a temporary name in the same directory and renamed into place, so a failed
// run never leaves partial output behind. Any failure is a DataSinkError.
func (s *FileSink) Write(ctx context.Context, table *model.Table) error {
	if err := ctx.Err(); err != nil {
		return &model.DataSinkError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return &model.DataSinkError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(table.Columns); err != nil {
		tmp.Close()
		return &model.DataSinkError{Path: s.path, Err: err}
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = cellString(row[col])
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return &model.DataSinkError{Path: s.path, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return &model.DataSinkError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &model.DataSinkError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &model.DataSinkError{Path: s.path, Err: err}
	}

	s.logger.Info("Wrote cleaned dataset",
		zap.String("path", s.path),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", len(table.Columns)))

	return nil
}

// cellString renders a cell for serialization. Coerced numbers keep the full
// precision decimal carries; the missing marker renders as an empty field.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

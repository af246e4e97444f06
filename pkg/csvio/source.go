// pkg/csvio/source.go
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Source defines the interface for loading a raw table
type Source interface {
	// Load reads the full dataset into memory, preserving row order and
	// raw column labels exactly as they appear in the source
	Load(ctx context.Context) (*model.Table, error)
}

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// FileSource loads a comma-delimited file with a header row
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a file source for the given path
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Load reads the file into a Table. Any failure to open or parse the file is
// reported as a DataSourceError and aborts the run; there is no row-level
// recovery at this stage.
func (s *FileSource) Load(ctx context.Context) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, &model.DataSourceError{Path: s.path, Err: err}
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, &model.DataSourceError{Path: s.path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Raw exports carry stray quotes inside unquoted fields; keep them as
	// literal characters and let the cleaning stages strip them.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			err = errors.New("file is empty")
		}
		return nil, &model.DataSourceError{Path: s.path, Err: err}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := model.NewTable(header)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.DataSourceError{Path: s.path, Err: err}
		}

		rec := make(model.Row, len(row))
		for i, val := range row {
			rec[header[i]] = val
		}
		table.Rows = append(table.Rows, rec)
	}

	s.logger.Info("Loaded raw dataset",
		zap.String("path", s.path),
		zap.Int("rows", table.RowCount()),
		zap.Strings("columns", table.Columns))

	return table, nil
}

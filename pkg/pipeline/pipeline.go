// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/cleaner"
	"github.com/josebleal/sales-cleaner/pkg/csvio"
	"github.com/josebleal/sales-cleaner/pkg/model"
)

// Pipeline orchestrates the cleaning run: load, normalize, coerce, filter,
// enrich, write. The stages form a strict total order with no branching; the
// first error aborts the remaining stages and no output is written.
type Pipeline struct {
	source   csvio.Source
	sink     csvio.Sink
	cleaner  *cleaner.Cleaner
	verifier *Verifier
	metrics  *RunMetrics
	logger   *zap.Logger
}

// NewPipeline creates a pipeline over the given source and sink
func NewPipeline(
	source csvio.Source,
	sink csvio.Sink,
	dataCleaner *cleaner.Cleaner,
	numericColumns []string,
	logger *zap.Logger,
) (*Pipeline, error) {
	if source == nil || sink == nil {
		return nil, errors.New("source and sink cannot be nil")
	}
	if dataCleaner == nil {
		return nil, errors.New("cleaner cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Pipeline{
		source:   source,
		sink:     sink,
		cleaner:  dataCleaner,
		verifier: NewVerifier(numericColumns, logger),
		metrics:  NewRunMetrics(logger),
		logger:   logger,
	}, nil
}

// Metrics exposes the run metrics collector, primarily for the final report
func (p *Pipeline) Metrics() *RunMetrics {
	return p.metrics
}

// Run executes the full pipeline once. The returned RunResult is populated as
// far as the run progressed; on error it records the failed stage.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	result := NewRunResult()
	p.logger.Info("Starting cleaning run", zap.String("run_id", result.RunID))

	table, err := p.source.Load(ctx)
	if err != nil {
		return p.fail(result, "load", err)
	}
	p.metrics.RecordLoad(table.RowCount())
	result.RowsLoaded = table.RowCount()

	if err := p.cleaner.NormalizeColumns(table); err != nil {
		return p.fail(result, "normalize_columns", err)
	}
	if err := p.cleaner.RequireColumns(table); err != nil {
		return p.fail(result, "require_columns", err)
	}

	coerceReport := p.cleaner.Coerce(table)
	p.metrics.RecordCoercion(coerceReport)
	result.CoercionMisses = coerceReport.MissingByColumn

	for _, stage := range []func(*model.Table) model.FilterReport{
		func(t *model.Table) model.FilterReport {
			report := p.cleaner.DropMissing(t)
			p.cleaner.TrimText(t)
			p.cleaner.Standardize(t)
			return report
		},
		p.cleaner.DropInvalid,
		p.cleaner.Deduplicate,
	} {
		report := stage(table)
		p.metrics.RecordFilter(report)
		result.AddFilterReport(report)
	}

	if err := p.cleaner.AddRevenue(table); err != nil {
		return p.fail(result, "enrich", err)
	}

	if err := p.verifier.Verify(table, result); err != nil {
		return p.fail(result, "verify", err)
	}

	if err := p.sink.Write(ctx, table); err != nil {
		return p.fail(result, "write", err)
	}
	p.metrics.RecordWritten(table.RowCount())
	result.RowsWritten = table.RowCount()
	result.Columns = table.Columns

	result.Complete(true)
	p.metrics.Complete()
	p.logger.Info("Cleaning run complete",
		zap.String("run_id", result.RunID),
		zap.Int("rows_written", result.RowsWritten),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// fail marks the result failed at the named stage and wraps the error
func (p *Pipeline) fail(result *RunResult, stage string, err error) (*RunResult, error) {
	result.FailedStage = stage
	result.Complete(false)
	p.metrics.Complete()
	p.logger.Error("Cleaning run aborted",
		zap.String("run_id", result.RunID),
		zap.String("stage", stage),
		zap.Error(err))
	return result, fmt.Errorf("stage %s: %w", stage, err)
}

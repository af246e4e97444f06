// pkg/pipeline/result.go
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// RunResult represents the outcome of a single cleaning run
type RunResult struct {
	RunID          string
	Success        bool
	FailedStage    string // Empty on success
	RowsLoaded     int
	RowsWritten    int
	CoercionMisses map[string]int
	FilterReports  []model.FilterReport
	Columns        []string // Output column order, revenue last
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// NewRunResult initializes a result with a fresh run identifier
func NewRunResult() *RunResult {
	return &RunResult{
		RunID:         uuid.New().String(),
		StartTime:     time.Now(),
		FilterReports: make([]model.FilterReport, 0),
	}
}

// AddFilterReport appends one stage report to the result
func (r *RunResult) AddFilterReport(report model.FilterReport) {
	r.FilterReports = append(r.FilterReports, report)
}

// RowsDropped returns the total rows removed across all filter stages
func (r *RunResult) RowsDropped() int {
	dropped := 0
	for _, report := range r.FilterReports {
		dropped += report.RowsDropped
	}
	return dropped
}

// DroppedBy returns the rows removed by the named stage
func (r *RunResult) DroppedBy(stage string) int {
	for _, report := range r.FilterReports {
		if report.Stage == stage {
			return report.RowsDropped
		}
	}
	return 0
}

// Complete marks the run finished and calculates its duration
func (r *RunResult) Complete(success bool) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Success = success
}

// pkg/pipeline/metrics.go
package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/model"
)

// RunMetrics tracks counters for a cleaning run. The pipeline itself is
// single-threaded; the mutex keeps the collector safe for callers that read
// a report while a run is in flight.
type RunMetrics struct {
	mu             sync.Mutex
	logger         *zap.Logger
	StartTime      time.Time
	EndTime        time.Time
	RowsLoaded     int
	RowsWritten    int
	DroppedByStage map[string]int
	MissingByCol   map[string]int
}

// NewRunMetrics creates a metrics collector
func NewRunMetrics(logger *zap.Logger) *RunMetrics {
	return &RunMetrics{
		logger:         logger,
		StartTime:      time.Now(),
		DroppedByStage: make(map[string]int),
		MissingByCol:   make(map[string]int),
	}
}

// RecordLoad notes the raw row count
func (m *RunMetrics) RecordLoad(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsLoaded = rows
}

// RecordCoercion folds a coercion report into the counters
func (m *RunMetrics) RecordCoercion(report *model.CoerceReport) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for col, count := range report.MissingByColumn {
		m.MissingByCol[col] += count
	}
}

// RecordFilter folds a filter stage report into the counters
func (m *RunMetrics) RecordFilter(report model.FilterReport) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DroppedByStage[report.Stage] += report.RowsDropped
}

// RecordWritten notes the final row count
func (m *RunMetrics) RecordWritten(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsWritten = rows
}

// Complete marks the run finished
func (m *RunMetrics) Complete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EndTime = time.Now()
}

// Duration returns the elapsed run time
func (m *RunMetrics) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// TotalDropped returns rows removed across all filter stages
func (m *RunMetrics) TotalDropped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalDroppedLocked()
}

func (m *RunMetrics) totalDroppedLocked() int {
	total := 0
	for _, n := range m.DroppedByStage {
		total += n
	}
	return total
}

// Report generates the human-readable run summary printed after a run
func (m *RunMetrics) Report() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("Cleaning Run Report\n")
	sb.WriteString("===================\n")
	sb.WriteString(fmt.Sprintf("Duration:        %.2fs\n", m.duration().Seconds()))
	sb.WriteString(fmt.Sprintf("Rows Loaded:     %d\n", m.RowsLoaded))
	sb.WriteString(fmt.Sprintf("Rows Written:    %d\n", m.RowsWritten))
	sb.WriteString(fmt.Sprintf("Rows Dropped:    %d\n", m.totalDroppedLocked()))

	if len(m.DroppedByStage) > 0 {
		sb.WriteString("\nDropped By Stage\n----------------\n")
		for _, stage := range sortedKeys(m.DroppedByStage) {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", stage, m.DroppedByStage[stage]))
		}
	}

	if len(m.MissingByCol) > 0 {
		sb.WriteString("\nUnparseable Values By Column\n----------------------------\n")
		for _, col := range sortedKeys(m.MissingByCol) {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", col, m.MissingByCol[col]))
		}
	}

	return sb.String()
}

func (m *RunMetrics) duration() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package metrics defines the sink interfaces the engine reports through.
// Implementations live under infra/metrics so the core stays free of
// exporter dependencies.
package metrics

import "time"

// AllocationResult describes one completed allocator run.
type AllocationResult struct {
	RunID      string
	Strategy   string
	Records    int
	Groups     int
	Categories int
	Duration   time.Duration
}

// MetricsSink records allocation results for observability purposes.
type MetricsSink interface {
	RecordAllocation(res AllocationResult) error
}

// ExportEvent describes one artifact written by the export layer.
type ExportEvent struct {
	RunID  string
	Format string // "csv", "xlsx", "zip", "github"
	Files  int
	Time   time.Time
}

// ExportRecorder records export activity.
type ExportRecorder interface {
	RecordExport(ev ExportEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordAllocation(AllocationResult) error { return nil }
func (NopSink) RecordExport(ExportEvent) error          { return nil }

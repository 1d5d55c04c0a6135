package metrics

import "errors"

// MultiSink fans events out to several sinks, collecting every error.
type MultiSink struct {
	sinks []MetricsSink
}

// NewMultiSink builds a MultiSink from the given sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordAllocation forwards the result to every sink. All sinks are
// attempted even when earlier ones fail.
func (m *MultiSink) RecordAllocation(res AllocationResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordAllocation(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordExport forwards the event to every sink implementing ExportRecorder.
func (m *MultiSink) RecordExport(ev ExportEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(ExportRecorder); ok {
			if err := r.RecordExport(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

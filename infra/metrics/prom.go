package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/acadkit/cohort/core/metrics"
)

// PromSink records allocation and export events in Prometheus metrics.
type PromSink struct {
	allocations *prometheus.CounterVec
	groupSize   *prometheus.HistogramVec
	exports     *prometheus.CounterVec
}

// NewPromSink registers allocation metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	allocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cohort_allocations_total",
		Help: "Total number of allocator runs",
	}, []string{"strategy"})
	groupSize := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cohort_allocation_records",
		Help:    "Records handled per allocator run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"strategy"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cohort_exports_total",
		Help: "Total number of exported artifacts",
	}, []string{"format"})

	if err := reg.Register(allocations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			allocations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(groupSize); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			groupSize = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(exports); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			exports = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{allocations: allocations, groupSize: groupSize, exports: exports}, nil
}

// RecordAllocation increments the run counter and observes the record count.
func (s *PromSink) RecordAllocation(res coremetrics.AllocationResult) error {
	s.allocations.WithLabelValues(res.Strategy).Inc()
	s.groupSize.WithLabelValues(res.Strategy).Observe(float64(res.Records))
	return nil
}

// RecordExport increments the export counter for the artifact format.
func (s *PromSink) RecordExport(ev coremetrics.ExportEvent) error {
	s.exports.WithLabelValues(ev.Format).Inc()
	return nil
}

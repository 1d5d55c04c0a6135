package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/acadkit/cohort/core/metrics"
)

func TestPromSinkRecordsAllocation(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	res := coremetrics.AllocationResult{
		RunID:    "run-1",
		Strategy: "balanced",
		Records:  8,
		Groups:   3,
		Duration: time.Millisecond,
	}
	require.NoError(t, sink.RecordAllocation(res))
	require.NoError(t, sink.RecordAllocation(res))

	got := testutil.ToFloat64(sink.allocations.WithLabelValues("balanced"))
	require.Equal(t, 2.0, got)
}

func TestPromSinkRecordsExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordExport(coremetrics.ExportEvent{Format: "zip", Files: 4}))
	got := testutil.ToFloat64(sink.exports.WithLabelValues("zip"))
	require.Equal(t, 1.0, got)
}

func TestPromSinkReusesExistingCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSink(reg)
	require.NoError(t, err)
	// Registering on the same registry again must reuse collectors.
	_, err = NewPromSink(reg)
	require.NoError(t, err)
}

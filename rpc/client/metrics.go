package client

import (
	"io"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"
)

// Counters are shared by all client instances in the process, the usual
// granularity for this engine (one client per host connection).
var (
	metricFramesRead    = metrics.NewCounter(`nvrpc_frames_read_total`)
	metricFramesWritten = metrics.NewCounter(`nvrpc_frames_written_total`)

	metricDroppedMalformed  = metrics.NewCounter(`nvrpc_frames_dropped_total{reason="malformed"}`)
	metricDroppedUnroutable = metrics.NewCounter(`nvrpc_frames_dropped_total{reason="unroutable"}`)
	metricDroppedShutdown   = metrics.NewCounter(`nvrpc_frames_dropped_total{reason="shutdown"}`)

	metricCallsDispatched    = metrics.NewCounter(`nvrpc_handlers_dispatched_total{kind="call"}`)
	metricNotifiesDispatched = metrics.NewCounter(`nvrpc_handlers_dispatched_total{kind="notify"}`)

	pendingCalls atomic.Int64
	_            = metrics.NewGauge(`nvrpc_pending_calls`, func() float64 {
		return float64(pendingCalls.Load())
	})
)

// WriteMetrics writes all engine metrics in Prometheus text format.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}

package debugserver

import (
	"flapscan/internal/shared/metrics"
)

var (
	// metricHTTPRequestDuration records latency per route pattern rather
	// than raw path to keep metric cardinality bounded.
	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDebug,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

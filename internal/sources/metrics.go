package sources

import (
	"flapscan/internal/shared/metrics"
)

var (
	metricLinesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "lines_read_total",
		},
	)

	metricOversizedLinesDroppedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "oversized_lines_dropped_total",
		},
	)
)

package filters

import (
	"flapscan/internal/shared/metrics"
)

const (
	stageDuration = "duration"
	stageBurst    = "burst"
)

var (
	metricRecordsPassedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "records_passed_total",
		},
		[]string{"stage"},
	)

	metricUsersRetainedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "burst_users_retained_total",
		},
	)

	metricUsersDroppedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "burst_users_dropped_total",
		},
	)
)

package extractors

import (
	"flapscan/internal/shared/metrics"
)

const (
	dropReasonMalformedDocument = "malformed_document"
	dropReasonMissingField      = "missing_field"
	dropReasonBadDuration       = "bad_duration"
	dropReasonBadTimestamp      = "bad_timestamp"
)

var (
	metricRecordsExtractedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "records_extracted_total",
		},
	)

	metricLinesDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "lines_dropped_total",
		},
		[]string{metrics.FieldDropReason},
	)

	metricExtractionPanicsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "panics_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

package filters

import (
	"flapscan/internal/models"
)

//go:generate mockgen -source=duration_filter.go -destination=./mocks/duration_filter_mock.go -package=mocks
type DurationFilter interface {
	// Apply keeps every record whose duration is at or below the configured
	// maximum. Order-preserving and stateless. With no maximum configured
	// the input passes through unchanged.
	Apply(records []*models.SessionRecord) []*models.SessionRecord
}

type durationFilter struct {
	maxDuration *int
}

// NewDurationFilter creates a DurationFilter. A nil maxDuration disables the
// stage.
func NewDurationFilter(maxDuration *int) DurationFilter {
	return &durationFilter{maxDuration: maxDuration}
}

func (f *durationFilter) Apply(records []*models.SessionRecord) []*models.SessionRecord {
	if f.maxDuration == nil {
		return records
	}

	kept := make([]*models.SessionRecord, 0, len(records))
	for _, record := range records {
		if record.Duration <= *f.maxDuration {
			kept = append(kept, record)
		}
	}
	metricRecordsPassedTotal.WithLabelValues(stageDuration).Add(float64(len(kept)))
	return kept
}

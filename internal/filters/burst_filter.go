package filters

import (
	"flapscan/internal/models"
)

//go:generate mockgen -source=burst_filter.go -destination=./mocks/burst_filter_mock.go -package=mocks
type BurstFilter interface {
	// Apply retains the FULL record set of every user that has at least one
	// calendar day with a session count at or above the configured minimum
	// (inclusive). Users with no qualifying day are dropped entirely. All of
	// a retained user's records are emitted together; relative order across
	// users is unspecified. With no minimum configured the input passes
	// through unchanged.
	Apply(records []*models.SessionRecord) []*models.SessionRecord
}

type burstFilter struct {
	minDailyCount *int
}

// NewBurstFilter creates a BurstFilter. A nil minDailyCount disables the
// stage.
func NewBurstFilter(minDailyCount *int) BurstFilter {
	return &burstFilter{minDailyCount: minDailyCount}
}

func (f *burstFilter) Apply(records []*models.SessionRecord) []*models.SessionRecord {
	if f.minDailyCount == nil {
		return records
	}

	// user -> day -> that user's records for the day, in input order
	byUser := make(map[string]map[models.Day][]*models.SessionRecord)
	for _, record := range records {
		byDay, exists := byUser[record.UserID]
		if !exists {
			byDay = make(map[models.Day][]*models.SessionRecord)
			byUser[record.UserID] = byDay
		}
		day := record.Day()
		byDay[day] = append(byDay[day], record)
	}

	kept := make([]*models.SessionRecord, 0, len(records))
	for _, byDay := range byUser {
		if !f.hasBurstDay(byDay) {
			metricUsersDroppedTotal.Inc()
			continue
		}
		metricUsersRetainedTotal.Inc()
		for _, dayRecords := range byDay {
			kept = append(kept, dayRecords...)
		}
	}
	metricRecordsPassedTotal.WithLabelValues(stageBurst).Add(float64(len(kept)))
	return kept
}

func (f *burstFilter) hasBurstDay(byDay map[models.Day][]*models.SessionRecord) bool {
	for _, dayRecords := range byDay {
		if len(dayRecords) >= *f.minDailyCount {
			return true
		}
	}
	return false
}

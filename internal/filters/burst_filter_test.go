package filters

import (
	"sort"
	"testing"

	"flapscan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstFilter_UserWithQualifyingDayKeepsAllDays(t *testing.T) {
	t.Parallel()

	// a@x.com bursts on 10-13 (3 sessions) and has a quiet 10-14 (1 session);
	// the quiet day must survive with the rest of the user's records.
	records := []*models.SessionRecord{
		sessionAt("a@x.com", "2021-10-13", 3),
		sessionAt("a@x.com", "2021-10-13", 4),
		sessionAt("a@x.com", "2021-10-13", 5),
		sessionAt("a@x.com", "2021-10-14", 9),
		sessionAt("b@x.com", "2021-10-13", 3),
		sessionAt("b@x.com", "2021-10-14", 3),
	}

	minDailyCount := 3
	filter := NewBurstFilter(&minDailyCount)

	kept := filter.Apply(records)

	require.Len(t, kept, 4)
	for _, record := range kept {
		assert.Equal(t, "a@x.com", record.UserID, "b@x.com never reaches 3 sessions on any day")
	}
	assert.ElementsMatch(t, records[:4], kept)
}

func TestBurstFilter_ThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	records := []*models.SessionRecord{
		sessionAt("a@x.com", "2021-10-13", 3),
		sessionAt("a@x.com", "2021-10-13", 3),
	}

	minDailyCount := 2
	filter := NewBurstFilter(&minDailyCount)

	kept := filter.Apply(records)
	assert.Len(t, kept, 2, "count exactly equal to the threshold qualifies")
}

func TestBurstFilter_CountsPerDayNotPerUser(t *testing.T) {
	t.Parallel()

	// 4 sessions total but never more than 2 on a single day.
	records := []*models.SessionRecord{
		sessionAt("a@x.com", "2021-10-11", 3),
		sessionAt("a@x.com", "2021-10-12", 3),
		sessionAt("a@x.com", "2021-10-13", 3),
		sessionAt("a@x.com", "2021-10-13", 3),
	}

	minDailyCount := 3
	filter := NewBurstFilter(&minDailyCount)

	kept := filter.Apply(records)
	assert.Empty(t, kept, "day buckets are counted independently")
}

func TestBurstFilter_DroppedUserFullyAbsent(t *testing.T) {
	t.Parallel()

	records := []*models.SessionRecord{
		sessionAt("quiet@x.com", "2021-10-13", 3),
		sessionAt("quiet@x.com", "2021-10-13", 3),
		sessionAt("noisy@x.com", "2021-10-13", 1),
		sessionAt("noisy@x.com", "2021-10-13", 1),
		sessionAt("noisy@x.com", "2021-10-13", 1),
		sessionAt("noisy@x.com", "2021-10-13", 1),
		sessionAt("noisy@x.com", "2021-10-13", 1),
	}

	minDailyCount := 5
	filter := NewBurstFilter(&minDailyCount)

	kept := filter.Apply(records)

	users := make(map[string]int)
	for _, record := range kept {
		users[record.UserID]++
	}
	assert.Equal(t, map[string]int{"noisy@x.com": 5}, users)
}

func TestBurstFilter_ThresholdUnset(t *testing.T) {
	t.Parallel()

	records := []*models.SessionRecord{
		sessionAt("a@x.com", "2021-10-13", 3),
		sessionAt("b@x.com", "2021-10-14", 4),
	}

	filter := NewBurstFilter(nil)

	kept := filter.Apply(records)
	assert.Equal(t, records, kept, "nil threshold passes everything through unchanged")
}

func TestBurstFilter_RetainedUserRecordsStayRecoverable(t *testing.T) {
	t.Parallel()

	records := []*models.SessionRecord{
		sessionAt("a@x.com", "2021-10-13", 1),
		sessionAt("b@x.com", "2021-10-13", 2),
		sessionAt("a@x.com", "2021-10-13", 3),
		sessionAt("b@x.com", "2021-10-13", 4),
	}

	minDailyCount := 2
	filter := NewBurstFilter(&minDailyCount)

	kept := filter.Apply(records)
	require.Len(t, kept, 4)

	// Grouping by user downstream must recover each user's full set,
	// whatever the emission order.
	durationsByUser := make(map[string][]int)
	for _, record := range kept {
		durationsByUser[record.UserID] = append(durationsByUser[record.UserID], record.Duration)
	}
	for _, durations := range durationsByUser {
		sort.Ints(durations)
	}
	assert.Equal(t, map[string][]int{
		"a@x.com": {1, 3},
		"b@x.com": {2, 4},
	}, durationsByUser)
}

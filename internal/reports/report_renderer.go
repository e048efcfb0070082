package reports

import (
	"fmt"
	"sort"
	"strings"

	"flapscan/internal/models"
)

// shortestListLen is how many of a day's smallest session durations the
// report lists.
const shortestListLen = 5

//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	// Render produces the final textual report for the filtered record set.
	// One block per user (users in lexicographic order), one line per
	// calendar day in ascending order, blank line between blocks. Rendering
	// the same record set twice yields byte-identical output.
	Render(records []*models.SessionRecord) string
}

type reportRenderer struct{}

func NewReportRenderer() ReportRenderer {
	return &reportRenderer{}
}

func (r *reportRenderer) Render(records []*models.SessionRecord) string {
	// user -> day -> durations; the device for a user is the one on the
	// first record encountered. One device per user is a documented
	// simplification of the model: sessions spanning several devices keep
	// only the first seen.
	byUser := make(map[string]map[models.Day][]int)
	deviceByUser := make(map[string]string)
	for _, record := range records {
		byDay, exists := byUser[record.UserID]
		if !exists {
			byDay = make(map[models.Day][]int)
			byUser[record.UserID] = byDay
			deviceByUser[record.UserID] = record.DeviceID
		}
		day := record.Day()
		byDay[day] = append(byDay[day], record.Duration)
	}

	userIDs := make([]string, 0, len(byUser))
	for userID := range byUser {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	blocks := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		blocks = append(blocks, r.renderUserBlock(userID, deviceByUser[userID], byUser[userID]))
	}

	return strings.Join(blocks, "\n\n")
}

func (r *reportRenderer) renderUserBlock(userID, deviceID string, byDay map[models.Day][]int) string {
	days := make([]models.Day, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	lines := make([]string, 0, len(days)+1)
	lines = append(lines, fmt.Sprintf("User %s (device %s)", userID, deviceID))
	for _, day := range days {
		durations := byDay[day]
		lines = append(lines, fmt.Sprintf("%s: %d sessions. Shortest: %s",
			day.Format(), len(durations), r.formatShortest(durations)))
	}

	return strings.Join(lines, "\n")
}

// formatShortest returns the smallest durations ascending as "<n>s",
// comma-joined, at most shortestListLen of them.
func (r *reportRenderer) formatShortest(durations []int) string {
	sorted := make([]int, len(durations))
	copy(sorted, durations)
	sort.Ints(sorted)

	if len(sorted) > shortestListLen {
		sorted = sorted[:shortestListLen]
	}

	parts := make([]string, 0, len(sorted))
	for _, seconds := range sorted {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, ",")
}

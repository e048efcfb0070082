package extractors

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"flapscan/internal/models"
)

// timestampLayout is the fixed Event-Timestamp format (MM/dd/yyyy HH:mm:ss)
// written by the NPS accounting log.
const timestampLayout = "01/02/2006 15:04:05"

// eventDocument maps the four consumed attributes of a RADIUS event
// document. Every line carries one self-contained XML document; all other
// attributes are ignored.
type eventDocument struct {
	EventTimestamp   string `xml:"Event-Timestamp"`
	AcctSessionTime  string `xml:"Acct-Session-Time"`
	CallingStationID string `xml:"Calling-Station-Id"`
	UserName         string `xml:"User-Name"`
}

//go:generate mockgen -source=record_extractor.go -destination=./mocks/record_extractor_mock.go -package=mocks
type RecordExtractor interface {
	// Extract parses one raw line as an event document. It returns the
	// extracted record and true on success, or nil and false when the line
	// is not a well-formed document, a required field is missing, the
	// duration is not a plain non-negative base-10 integer, or the
	// timestamp does not match the expected format. Failures are silent:
	// most lines belong to unrelated event kinds and are expected noise.
	//
	// Extract holds no state and is safe to call concurrently.
	Extract(line []byte) (*models.SessionRecord, bool)
}

type recordExtractor struct{}

func NewRecordExtractor() RecordExtractor {
	return &recordExtractor{}
}

func (e *recordExtractor) Extract(line []byte) (*models.SessionRecord, bool) {
	var doc eventDocument
	if err := xml.Unmarshal(line, &doc); err != nil {
		metricLinesDroppedTotal.WithLabelValues(dropReasonMalformedDocument).Inc()
		return nil, false
	}

	userID := strings.ToLower(strings.TrimSpace(doc.UserName))
	deviceID := strings.TrimSpace(doc.CallingStationID)
	if userID == "" || deviceID == "" {
		metricLinesDroppedTotal.WithLabelValues(dropReasonMissingField).Inc()
		return nil, false
	}

	duration, ok := parseDuration(doc.AcctSessionTime)
	if !ok {
		metricLinesDroppedTotal.WithLabelValues(dropReasonBadDuration).Inc()
		return nil, false
	}

	timestamp, err := time.Parse(timestampLayout, strings.TrimSpace(doc.EventTimestamp))
	if err != nil {
		metricLinesDroppedTotal.WithLabelValues(dropReasonBadTimestamp).Inc()
		return nil, false
	}

	metricRecordsExtractedTotal.Inc()
	return &models.SessionRecord{
		Timestamp: timestamp,
		Duration:  duration,
		DeviceID:  deviceID,
		UserID:    userID,
	}, true
}

// parseDuration parses the session duration as a plain base-10 non-negative
// integer. Signs, whitespace and any other non-digit content invalidate the
// field.
func parseDuration(field string) (int, bool) {
	if field == "" {
		return 0, false
	}
	seconds, err := strconv.ParseUint(field, 10, 63)
	if err != nil {
		return 0, false
	}
	return int(seconds), true
}

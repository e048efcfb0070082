package models

import "time"

// SessionRecord is one authentication session extracted from the event log.
// Records are immutable values; duplicates are legal and each represents one
// session. UserID is always non-empty, lower-cased and trimmed: it is the
// join key for all downstream grouping.
type SessionRecord struct {
	Timestamp time.Time
	Duration  int // seconds, >= 0
	DeviceID  string
	UserID    string
}

// Day returns the day-bucket key for the record's timestamp.
func (r *SessionRecord) Day() Day {
	return NewDay(r.Timestamp)
}

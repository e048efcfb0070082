package models

import "time"

// Day is a calendar-day bucketing key derived from a timestamp by discarding
// the time of day. Days compare and sort chronologically.
type Day struct {
	Year  int
	Month time.Month
	DayOf int
}

func NewDay(t time.Time) Day {
	year, month, day := t.Date()
	return Day{Year: year, Month: month, DayOf: day}
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.DayOf < other.DayOf
}

// Format renders the day as day.month.year, e.g. "13.10.2021".
func (d Day) Format() string {
	return time.Date(d.Year, d.Month, d.DayOf, 0, 0, 0, 0, time.UTC).Format("02.01.2006")
}

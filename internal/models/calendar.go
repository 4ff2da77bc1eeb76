package models

import "fmt"

// CalendarEventType classifies an academic calendar entry.
type CalendarEventType string

const (
	CalendarEventExam    CalendarEventType = "exam"
	CalendarEventHoliday CalendarEventType = "holiday"
	CalendarEventEvent   CalendarEventType = "event"
	CalendarEventOther   CalendarEventType = "other"
)

// Valid returns true when the type is supported.
func (t CalendarEventType) Valid() bool {
	switch t {
	case CalendarEventExam, CalendarEventHoliday, CalendarEventEvent, CalendarEventOther:
		return true
	default:
		return false
	}
}

// CalendarEvent is a single day entry of the academic calendar.
type CalendarEvent struct {
	ID    string            `db:"id" json:"id,omitempty"`
	Year  int               `db:"year" json:"year,omitempty"`
	Month int               `db:"month" json:"month,omitempty"`
	Day   int               `db:"day" json:"day"`
	Type  CalendarEventType `db:"type" json:"type"`
	Label string            `db:"label" json:"label"`
}

// CalendarKey returns the year-month key events are grouped by, e.g. "2025-03".
func CalendarKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

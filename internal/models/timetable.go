package models

import "strings"

// Weekday names a school day. Values follow the labels used in the timetable grid.
type Weekday string

const (
	WeekdayMonday    Weekday = "Segunda"
	WeekdayTuesday   Weekday = "Terça"
	WeekdayWednesday Weekday = "Quarta"
	WeekdayThursday  Weekday = "Quinta"
	WeekdayFriday    Weekday = "Sexta"
)

var schoolWeek = []Weekday{WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday}

// Weekdays returns the school week in display order.
func Weekdays() []Weekday {
	days := make([]Weekday, len(schoolWeek))
	copy(days, schoolWeek)
	return days
}

// Valid returns true when the weekday is part of the school week.
func (d Weekday) Valid() bool {
	for _, day := range schoolWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ParseWeekday resolves a weekday name case-insensitively. "Terca" is accepted for "Terça".
func ParseWeekday(raw string) (Weekday, bool) {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	for _, day := range schoolWeek {
		name := strings.ToLower(string(day))
		if candidate == name || candidate == strings.ReplaceAll(name, "ç", "c") {
			return day, true
		}
	}
	return "", false
}

// TimeSlot is a contiguous period of a shift, either a class or a break.
type TimeSlot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	IsBreak bool   `json:"is_break"`
	Label   string `json:"label,omitempty"`
}

// ScheduleEntry is the lesson placed in one (class, weekday, slot) cell.
type ScheduleEntry struct {
	SubjectName string `json:"subject_name" db:"subject_name"`
	EducatorID  string `json:"educator_id" db:"educator_id"`
}

// WeeklySchedule maps weekday -> slot start (HH:MM) -> entry for a single class.
type WeeklySchedule map[Weekday]map[string]ScheduleEntry

// Clone returns a deep copy of the schedule. A nil schedule clones to an empty one.
func (w WeeklySchedule) Clone() WeeklySchedule {
	out := make(WeeklySchedule, len(w))
	for day, slots := range w {
		if len(slots) == 0 {
			continue
		}
		copied := make(map[string]ScheduleEntry, len(slots))
		for start, entry := range slots {
			copied[start] = entry
		}
		out[day] = copied
	}
	return out
}

// Entry returns the entry stored at weekday/slot, if any.
func (w WeeklySchedule) Entry(day Weekday, slotStart string) (ScheduleEntry, bool) {
	slots, ok := w[day]
	if !ok {
		return ScheduleEntry{}, false
	}
	entry, ok := slots[slotStart]
	return entry, ok
}

// ScheduleEntryRow is the persisted form of a single schedule cell.
type ScheduleEntryRow struct {
	ID          string  `db:"id"`
	ClassID     string  `db:"class_id"`
	Weekday     Weekday `db:"weekday"`
	SlotStart   string  `db:"slot_start"`
	SubjectName string  `db:"subject_name"`
	EducatorID  string  `db:"educator_id"`
}

// ClassSchedule couples a class with its weekly schedule for read-side projections.
type ClassSchedule struct {
	ClassID   string         `json:"class_id"`
	ClassName string         `json:"class_name"`
	Schedule  WeeklySchedule `json:"schedule"`
}

// AgendaEntry is one lesson in an educator's personal timetable.
type AgendaEntry struct {
	Subject   string `json:"subject"`
	ClassID   string `json:"class_id"`
	ClassName string `json:"class_name"`
}

// EducatorAgenda maps weekday -> slot start -> lesson for one educator. It is derived, never stored.
type EducatorAgenda map[Weekday]map[string]AgendaEntry

// EducatorConflict reports an educator placed in more than one class for the same cell.
type EducatorConflict struct {
	EducatorID string   `json:"educator_id"`
	Weekday    Weekday  `json:"weekday"`
	SlotStart  string   `json:"slot_start"`
	ClassIDs   []string `json:"class_ids"`
}

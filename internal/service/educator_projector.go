package service

import (
	"sort"
	"strconv"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// ProjectEducatorAgenda derives an educator's weekly agenda from every class schedule.
// For each weekday and non-break slot, classes are scanned in ascending id order and the first
// class placing the educator in that cell wins. Weekdays without lessons are omitted.
func ProjectEducatorAgenda(educatorID string, schedules []models.ClassSchedule, daySlots []models.TimeSlot) models.EducatorAgenda {
	ordered := sortedClassSchedules(schedules)
	agenda := make(models.EducatorAgenda)

	for _, day := range models.Weekdays() {
		for _, slot := range daySlots {
			if slot.IsBreak {
				continue
			}
			for _, class := range ordered {
				entry, ok := class.Schedule.Entry(day, slot.Start)
				if !ok || entry.EducatorID != educatorID {
					continue
				}
				if agenda[day] == nil {
					agenda[day] = make(map[string]models.AgendaEntry)
				}
				agenda[day][slot.Start] = models.AgendaEntry{
					Subject:   entry.SubjectName,
					ClassID:   class.ClassID,
					ClassName: classDisplayName(class),
				}
				break
			}
		}
	}
	return agenda
}

// FindEducatorConflicts lists cells where one educator is placed in more than one class.
// It only reports; writes are never rejected because of double-booking.
func FindEducatorConflicts(schedules []models.ClassSchedule) []models.EducatorConflict {
	type cellKey struct {
		educator string
		day      models.Weekday
		slot     string
	}
	placements := make(map[cellKey][]string)
	for _, class := range sortedClassSchedules(schedules) {
		for day, slots := range class.Schedule {
			for start, entry := range slots {
				key := cellKey{educator: entry.EducatorID, day: day, slot: start}
				placements[key] = append(placements[key], class.ClassID)
			}
		}
	}

	var conflicts []models.EducatorConflict
	for key, classIDs := range placements {
		if len(classIDs) < 2 {
			continue
		}
		conflicts = append(conflicts, models.EducatorConflict{
			EducatorID: key.educator,
			Weekday:    key.day,
			SlotStart:  key.slot,
			ClassIDs:   classIDs,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.EducatorID != b.EducatorID {
			return a.EducatorID < b.EducatorID
		}
		if a.Weekday != b.Weekday {
			return weekdayIndex(a.Weekday) < weekdayIndex(b.Weekday)
		}
		return a.SlotStart < b.SlotStart
	})
	return conflicts
}

func sortedClassSchedules(schedules []models.ClassSchedule) []models.ClassSchedule {
	ordered := make([]models.ClassSchedule, len(schedules))
	copy(ordered, schedules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return lessClassID(ordered[i].ClassID, ordered[j].ClassID)
	})
	return ordered
}

// lessClassID orders numeric ids numerically and everything else lexicographically,
// numeric ids first.
func lessClassID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func classDisplayName(class models.ClassSchedule) string {
	if class.ClassName != "" {
		return class.ClassName
	}
	return class.ClassID
}

func weekdayIndex(day models.Weekday) int {
	for i, d := range models.Weekdays() {
		if d == day {
			return i
		}
	}
	return len(models.Weekdays())
}

package service

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

var (
	recessStartMarker = foldLabel("início do recesso")
	recessEndMarker   = foldLabel("fim do recesso")
	noClassMarkers    = []string{
		foldLabel("conselho de classe"),
		foldLabel("reunião pedagógica"),
		foldLabel("não haverá aula"),
	}
)

// AbsencesInMonth walks every day of the month and counts "Falta" marks on school days.
//
// Weekends, holiday events, recess ranges (delimited by "início do recesso"/"fim do recesso"
// markers, inclusive) and "other" events announcing no classes are non-school days and never
// count, whatever the raw record says. School days without a mark default to "Presente".
func AbsencesInMonth(attendance map[string]models.AttendanceStatus, year, month int, events []models.CalendarEvent) models.MonthlyAttendance {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	nonSchool := classifyNonSchoolDays(daysInMonth, events)

	result := models.MonthlyAttendance{
		Year:          year,
		Month:         month,
		PerDay:        make(map[int]models.AttendanceStatus),
		NonSchoolDays: make(map[int]models.NonSchoolReason),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			result.NonSchoolDays[day] = models.NonSchoolWeekend
			continue
		}
		if reason, ok := nonSchool[day]; ok {
			result.NonSchoolDays[day] = reason
			continue
		}

		status, ok := attendance[date.Format(models.DateKeyLayout)]
		if !ok || !status.Valid() {
			status = models.AttendancePresent
		}
		result.PerDay[day] = status
		result.SchoolDays++
		if status == models.AttendanceAbsent {
			result.TotalAbsences++
		}
	}
	return result
}

// classifyNonSchoolDays maps calendar-driven closures to their reason. Holidays take precedence
// over recess, which takes precedence over administrative no-class days.
func classifyNonSchoolDays(daysInMonth int, events []models.CalendarEvent) map[int]models.NonSchoolReason {
	reasons := make(map[int]models.NonSchoolReason)
	mark := func(day int, reason models.NonSchoolReason) {
		if day < 1 || day > daysInMonth {
			return
		}
		if _, exists := reasons[day]; !exists {
			reasons[day] = reason
		}
	}

	for _, event := range events {
		if event.Type == models.CalendarEventHoliday {
			mark(event.Day, models.NonSchoolHoliday)
		}
	}
	for _, span := range recessRanges(daysInMonth, events) {
		for day := span[0]; day <= span[1]; day++ {
			mark(day, models.NonSchoolRecess)
		}
	}
	for _, event := range events {
		if event.Type == models.CalendarEventOther && isNoClassLabel(event.Label) {
			mark(event.Day, models.NonSchoolNoClass)
		}
	}
	return reasons
}

// recessRanges pairs each recess start marker with the next end marker. An unmatched start runs
// to the end of the month; an end with no preceding start runs from day 1.
func recessRanges(daysInMonth int, events []models.CalendarEvent) [][2]int {
	type marker struct {
		day   int
		start bool
	}
	var markers []marker
	for _, event := range events {
		if event.Type != models.CalendarEventOther {
			continue
		}
		label := foldLabel(event.Label)
		switch {
		case strings.Contains(label, recessStartMarker):
			markers = append(markers, marker{day: event.Day, start: true})
		case strings.Contains(label, recessEndMarker):
			markers = append(markers, marker{day: event.Day})
		}
	}
	// A start and end on the same day form a one-day span regardless of input order.
	sort.SliceStable(markers, func(i, j int) bool {
		if markers[i].day == markers[j].day {
			return markers[i].start && !markers[j].start
		}
		return markers[i].day < markers[j].day
	})

	var spans [][2]int
	open := 0
	for _, m := range markers {
		if m.start {
			if open == 0 {
				open = m.day
			}
			continue
		}
		from := open
		if from == 0 {
			from = 1
		}
		spans = append(spans, [2]int{from, m.day})
		open = 0
	}
	if open != 0 {
		spans = append(spans, [2]int{open, daysInMonth})
	}
	return spans
}

func isNoClassLabel(label string) bool {
	folded := foldLabel(label)
	for _, marker := range noClassMarkers {
		if strings.Contains(folded, marker) {
			return true
		}
	}
	return false
}

// foldLabel lowercases and strips diacritics so "Início do Recesso" matches "inicio do recesso".
func foldLabel(label string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, strings.TrimSpace(label))
	if err != nil {
		stripped = label
	}
	return cases.Fold().String(stripped)
}

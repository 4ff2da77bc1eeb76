package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// March 2025 starts on a Saturday and has 21 weekdays.
func TestAbsencesInMonthIgnoresWeekends(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{
		"2025-03-01": models.AttendanceAbsent,
		"2025-03-04": models.AttendanceAbsent,
	}

	result := AbsencesInMonth(attendance, 2025, 3, nil)

	assert.Equal(t, 1, result.TotalAbsences)
	assert.Equal(t, 21, result.SchoolDays)
	assert.Equal(t, models.NonSchoolWeekend, result.NonSchoolDays[1])
	assert.Equal(t, models.AttendanceAbsent, result.PerDay[4])
	assert.Equal(t, models.AttendancePresent, result.PerDay[5])
	_, weekendListed := result.PerDay[1]
	assert.False(t, weekendListed)
}

func TestAbsencesInMonthOnlyCountsFalta(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{
		"2025-03-03": models.AttendanceJustified,
		"2025-03-05": models.AttendancePresent,
		"2025-03-06": models.AttendanceAbsent,
		"2025-03-07": models.AttendanceStatus("Atrasado"),
	}

	result := AbsencesInMonth(attendance, 2025, 3, nil)
	assert.Equal(t, 1, result.TotalAbsences)
	assert.Equal(t, models.AttendanceJustified, result.PerDay[3])
	assert.Equal(t, models.AttendancePresent, result.PerDay[7])
}

func TestAbsencesInMonthHolidayIsNotCounted(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{"2025-03-04": models.AttendanceAbsent}
	events := []models.CalendarEvent{{Day: 4, Type: models.CalendarEventHoliday, Label: "Carnaval"}}

	result := AbsencesInMonth(attendance, 2025, 3, events)
	assert.Zero(t, result.TotalAbsences)
	assert.Equal(t, 20, result.SchoolDays)
	assert.Equal(t, models.NonSchoolHoliday, result.NonSchoolDays[4])
}

// July 2025 starts on a Tuesday; days 1-15 contain 11 weekdays.
func TestAbsencesInMonthRecessRange(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{
		"2025-07-10": models.AttendanceAbsent,
		"2025-07-16": models.AttendanceAbsent,
	}
	events := []models.CalendarEvent{
		{Day: 15, Type: models.CalendarEventOther, Label: "Fim do Recesso"},
		{Day: 1, Type: models.CalendarEventOther, Label: "Início do recesso escolar"},
	}

	result := AbsencesInMonth(attendance, 2025, 7, events)
	assert.Equal(t, 1, result.TotalAbsences)
	assert.Equal(t, 12, result.SchoolDays)
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[10])
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[15])
	assert.Equal(t, models.NonSchoolWeekend, result.NonSchoolDays[5])
	assert.Equal(t, models.AttendanceAbsent, result.PerDay[16])
}

func TestAbsencesInMonthUnmatchedRecessMarkers(t *testing.T) {
	start := []models.CalendarEvent{{Day: 28, Type: models.CalendarEventOther, Label: "inicio do recesso"}}
	result := AbsencesInMonth(nil, 2025, 7, start)
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[28])
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[31])
	assert.Equal(t, 19, result.SchoolDays)

	end := []models.CalendarEvent{{Day: 2, Type: models.CalendarEventOther, Label: "FIM DO RECESSO"}}
	result = AbsencesInMonth(nil, 2025, 7, end)
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[1])
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[2])
	assert.Equal(t, 21, result.SchoolDays)
}

func TestAbsencesInMonthSameDayRecessInReverseOrder(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{
		"2025-03-04": models.AttendanceAbsent,
		"2025-03-20": models.AttendanceAbsent,
	}
	events := []models.CalendarEvent{
		{Day: 10, Type: models.CalendarEventOther, Label: "Fim do Recesso"},
		{Day: 10, Type: models.CalendarEventOther, Label: "Início do Recesso"},
	}

	result := AbsencesInMonth(attendance, 2025, 3, events)
	assert.Equal(t, 2, result.TotalAbsences)
	assert.Equal(t, 20, result.SchoolDays)
	assert.Equal(t, models.NonSchoolRecess, result.NonSchoolDays[10])
	_, day11 := result.NonSchoolDays[11]
	assert.False(t, day11)
	_, day3 := result.NonSchoolDays[3]
	assert.False(t, day3)

	reversed := []models.CalendarEvent{events[1], events[0]}
	assert.Equal(t, result, AbsencesInMonth(attendance, 2025, 3, reversed))
}

func TestAbsencesInMonthNoClassLabels(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{
		"2025-03-12": models.AttendanceAbsent,
		"2025-03-13": models.AttendanceAbsent,
		"2025-03-14": models.AttendanceAbsent,
	}
	events := []models.CalendarEvent{
		{Day: 12, Type: models.CalendarEventOther, Label: "Conselho de Classe - 1º bimestre"},
		{Day: 13, Type: models.CalendarEventOther, Label: "Reuniao Pedagogica"},
		{Day: 14, Type: models.CalendarEventEvent, Label: "Não haverá aula"},
	}

	result := AbsencesInMonth(attendance, 2025, 3, events)
	assert.Equal(t, models.NonSchoolNoClass, result.NonSchoolDays[12])
	assert.Equal(t, models.NonSchoolNoClass, result.NonSchoolDays[13])
	// only "other" events close the school
	assert.Equal(t, models.AttendanceAbsent, result.PerDay[14])
	assert.Equal(t, 1, result.TotalAbsences)
}

func TestAbsencesInMonthHolidayTakesPrecedence(t *testing.T) {
	events := []models.CalendarEvent{
		{Day: 3, Type: models.CalendarEventOther, Label: "Não haverá aula"},
		{Day: 3, Type: models.CalendarEventHoliday, Label: "Feriado municipal"},
	}
	result := AbsencesInMonth(nil, 2025, 3, events)
	assert.Equal(t, models.NonSchoolHoliday, result.NonSchoolDays[3])
}

func TestAbsencesInMonthDoesNotMutateInputs(t *testing.T) {
	attendance := map[string]models.AttendanceStatus{"2025-03-04": models.AttendanceAbsent}
	events := []models.CalendarEvent{
		{Day: 20, Type: models.CalendarEventOther, Label: "Fim do recesso"},
		{Day: 17, Type: models.CalendarEventOther, Label: "Início do recesso"},
	}

	first := AbsencesInMonth(attendance, 2025, 3, events)
	second := AbsencesInMonth(attendance, 2025, 3, events)

	assert.Equal(t, first, second)
	require.Len(t, attendance, 1)
	assert.Equal(t, 20, events[0].Day)
	assert.Equal(t, "Fim do recesso", events[0].Label)
}

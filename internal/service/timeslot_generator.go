package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

const (
	minutesPerDay   = 24 * 60
	breakLabel      = "Intervalo"
	lunchBreakLabel = "Almoço"
)

// TimeSlotConfig holds the numeric parameters of one shift.
type TimeSlotConfig struct {
	StartTime            string `json:"start_time" validate:"required"`
	ClassDurationMinutes int    `json:"class_duration_minutes"`
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	NumberOfClasses      int    `json:"number_of_classes"`
	// BreakAfterClass is 1-based; zero disables the break.
	BreakAfterClass int `json:"break_after_class"`
}

func (c TimeSlotConfig) emitsBreak() bool {
	return c.BreakAfterClass >= 1 && c.BreakAfterClass < c.NumberOfClasses
}

// GenerateTimeSlots walks a running clock from the start time and emits the class slots of a
// shift, inserting a single break after class BreakAfterClass unless it is the last one.
func GenerateTimeSlots(cfg TimeSlotConfig) ([]models.TimeSlot, error) {
	start, err := validateTimeSlotConfig(cfg)
	if err != nil {
		return nil, err
	}

	slots := make([]models.TimeSlot, 0, cfg.NumberOfClasses+1)
	clock := start
	for i := 1; i <= cfg.NumberOfClasses; i++ {
		end := clock + cfg.ClassDurationMinutes
		slots = append(slots, models.TimeSlot{
			Start: formatClock(clock),
			End:   formatClock(end),
			Label: fmt.Sprintf("Aula %d", i),
		})
		clock = end

		if i == cfg.BreakAfterClass && i != cfg.NumberOfClasses {
			end = clock + cfg.BreakDurationMinutes
			slots = append(slots, models.TimeSlot{
				Start:   formatClock(clock),
				End:     formatClock(end),
				IsBreak: true,
				Label:   breakLabel,
			})
			clock = end
		}
	}
	return slots, nil
}

// BuildDaySlots joins the morning shift, a lunch break covering the gap between shifts and the
// afternoon shift. Either shift may be nil.
func BuildDaySlots(morning, afternoon *TimeSlotConfig) ([]models.TimeSlot, error) {
	var day []models.TimeSlot
	if morning != nil {
		slots, err := GenerateTimeSlots(*morning)
		if err != nil {
			return nil, err
		}
		day = append(day, slots...)
	}
	if afternoon == nil {
		return day, nil
	}
	slots, err := GenerateTimeSlots(*afternoon)
	if err != nil {
		return nil, err
	}
	if len(day) > 0 {
		morningEnd, _ := parseClock(day[len(day)-1].End)
		afternoonStart, _ := parseClock(slots[0].Start)
		if afternoonStart < morningEnd {
			return nil, appErrors.Clone(appErrors.ErrInvalidConfiguration, "afternoon shift starts before the morning shift ends")
		}
		if afternoonStart > morningEnd {
			day = append(day, models.TimeSlot{
				Start:   formatClock(morningEnd),
				End:     formatClock(afternoonStart),
				IsBreak: true,
				Label:   lunchBreakLabel,
			})
		}
	}
	return append(day, slots...), nil
}

func validateTimeSlotConfig(cfg TimeSlotConfig) (int, error) {
	start, err := parseClock(cfg.StartTime)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInvalidConfiguration.Code, appErrors.ErrInvalidConfiguration.Status, "start time must use HH:MM")
	}
	if cfg.NumberOfClasses <= 0 {
		return 0, appErrors.Clone(appErrors.ErrInvalidConfiguration, "number of classes must be greater than zero")
	}
	if cfg.ClassDurationMinutes <= 0 {
		return 0, appErrors.Clone(appErrors.ErrInvalidConfiguration, "class duration must be greater than zero")
	}
	if cfg.BreakAfterClass < 0 {
		return 0, appErrors.Clone(appErrors.ErrInvalidConfiguration, "break position cannot be negative")
	}
	if cfg.BreakDurationMinutes < 0 || (cfg.emitsBreak() && cfg.BreakDurationMinutes == 0) {
		return 0, appErrors.Clone(appErrors.ErrInvalidConfiguration, "break duration must be greater than zero")
	}

	total := cfg.NumberOfClasses * cfg.ClassDurationMinutes
	if cfg.emitsBreak() {
		total += cfg.BreakDurationMinutes
	}
	if start+total > minutesPerDay {
		return 0, appErrors.Clone(appErrors.ErrInvalidConfiguration, "shift runs past midnight")
	}
	return start, nil
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

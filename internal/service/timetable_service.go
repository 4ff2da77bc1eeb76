package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	"github.com/noah-isme/sma-academic-engine/pkg/config"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

// TimetableService exposes the configured school day and previews of alternative shift settings.
type TimetableService struct {
	daySlots  []models.TimeSlot
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService generates the configured day once. An invalid configuration fails fast.
func NewTimetableService(cfg config.TimetableConfig, validate *validator.Validate, logger *zap.Logger) (*TimetableService, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	slots, err := BuildDaySlots(shiftToConfig(cfg.Morning), shiftToConfig(cfg.Afternoon))
	if err != nil {
		return nil, err
	}
	logger.Info("timetable configured", zap.Int("slots", len(slots)))
	return &TimetableService{daySlots: slots, validator: validate, logger: logger}, nil
}

// DaySlots returns a copy of the configured full-day slot sequence.
func (s *TimetableService) DaySlots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(s.daySlots))
	copy(out, s.daySlots)
	return out
}

// IsClassSlot reports whether start is the start of a configured, non-break slot.
func (s *TimetableService) IsClassSlot(start string) bool {
	for _, slot := range s.daySlots {
		if slot.Start == start && !slot.IsBreak {
			return true
		}
	}
	return false
}

// Preview generates slots for arbitrary shift parameters without changing the configuration.
func (s *TimetableService) Preview(req dto.TimeSlotPreviewRequest) ([]models.TimeSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload")
	}
	return GenerateTimeSlots(TimeSlotConfig{
		StartTime:            req.StartTime,
		ClassDurationMinutes: req.ClassDurationMinutes,
		BreakDurationMinutes: req.BreakDurationMinutes,
		NumberOfClasses:      req.NumberOfClasses,
		BreakAfterClass:      req.BreakAfterClass,
	})
}

func shiftToConfig(shift config.ShiftConfig) *TimeSlotConfig {
	if !shift.Enabled() {
		return nil
	}
	return &TimeSlotConfig{
		StartTime:            shift.StartTime,
		ClassDurationMinutes: shift.ClassDurationMinutes,
		BreakDurationMinutes: shift.BreakDurationMinutes,
		NumberOfClasses:      shift.NumberOfClasses,
		BreakAfterClass:      shift.BreakAfterClass,
	}
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

type scheduleWriter interface {
	SetEntry(ctx context.Context, classID string, day models.Weekday, slotStart string, entry models.ScheduleEntry) error
	RemoveEntry(ctx context.Context, classID string, day models.Weekday, slotStart string) error
	WeeklySchedule(classID string) models.WeeklySchedule
}

type slotCatalog interface {
	IsClassSlot(start string) bool
}

// ScheduleService validates timetable commands and applies them to the schedule store.
type ScheduleService struct {
	store     scheduleWriter
	slots     slotCatalog
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService wires schedule dependencies. slots may be nil to accept any HH:MM start.
func NewScheduleService(store scheduleWriter, slots slotCatalog, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		store:     store,
		slots:     slots,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// SetEntry places a lesson in a class cell, replacing whatever was there.
func (s *ScheduleService) SetEntry(ctx context.Context, req dto.SetScheduleEntryRequest) (models.WeeklySchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule entry payload")
	}
	day, slotStart, err := parseCell(req.Weekday, req.SlotStart)
	if err != nil {
		return nil, err
	}
	if s.slots != nil && !s.slots.IsClassSlot(slotStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s is not the start of a class slot", slotStart))
	}
	classID := strings.TrimSpace(req.ClassID)
	entry := models.ScheduleEntry{
		SubjectName: strings.TrimSpace(req.SubjectName),
		EducatorID:  strings.TrimSpace(req.EducatorID),
	}
	if err := s.store.SetEntry(ctx, classID, day, slotStart, entry); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, "set")
	s.logger.Info("schedule entry set",
		zap.String("class_id", classID),
		zap.String("weekday", string(day)),
		zap.String("slot", slotStart),
		zap.String("educator_id", entry.EducatorID),
	)
	return s.store.WeeklySchedule(classID), nil
}

// RemoveEntry clears a class cell. Clearing an empty cell succeeds.
func (s *ScheduleService) RemoveEntry(ctx context.Context, classID, weekday, slot string) (models.WeeklySchedule, error) {
	classID = strings.TrimSpace(classID)
	if classID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class id is required")
	}
	day, slotStart, err := parseCell(weekday, slot)
	if err != nil {
		return nil, err
	}
	if err := s.store.RemoveEntry(ctx, classID, day, slotStart); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, "remove")
	s.logger.Info("schedule entry removed",
		zap.String("class_id", classID),
		zap.String("weekday", string(day)),
		zap.String("slot", slotStart),
	)
	return s.store.WeeklySchedule(classID), nil
}

// WeeklySchedule returns the class schedule; unknown classes yield an empty schedule.
func (s *ScheduleService) WeeklySchedule(_ context.Context, classID string) models.WeeklySchedule {
	return s.store.WeeklySchedule(strings.TrimSpace(classID))
}

func (s *ScheduleService) afterMutation(ctx context.Context, operation string) {
	s.metrics.RecordScheduleMutation(operation)
	// cache failures are logged by the cache service; the write already succeeded
	_ = s.cache.Invalidate(ctx, agendaCachePattern)
}

func parseCell(weekday, slot string) (models.Weekday, string, error) {
	day, ok := models.ParseWeekday(weekday)
	if !ok {
		return "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", weekday))
	}
	minutes, err := parseClock(slot)
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "slot start must use HH:MM")
	}
	return day, formatClock(minutes), nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

// CalendarRepository stores the academic calendar consumed by attendance aggregation.
type CalendarRepository interface {
	ListByMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error)
	Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

// CalendarService maintains holidays, recess markers and other calendar events.
type CalendarService struct {
	repo      CalendarRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(repo CalendarRepository, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{repo: repo, validator: validate, logger: logger}
}

// ListMonth returns the events of one month ordered by day.
func (s *CalendarService) ListMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "year and month are out of range")
	}
	events, err := s.repo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load calendar")
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}
	return events, nil
}

// CreateEvent validates and stores an event.
func (s *CalendarService) CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid calendar event")
	}
	if last := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day(); req.Day > last {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day is outside the month")
	}

	event, err := s.repo.Create(ctx, models.CalendarEvent{
		Year:  req.Year,
		Month: req.Month,
		Day:   req.Day,
		Type:  models.CalendarEventType(req.Type),
		Label: strings.TrimSpace(req.Label),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create calendar event")
	}
	s.logger.Info("calendar event created",
		zap.String("event_id", event.ID),
		zap.String("date", models.CalendarKey(event.Year, event.Month)),
		zap.Int("day", event.Day),
		zap.String("type", string(event.Type)),
	)
	return &event, nil
}

// DeleteEvent removes an event by id.
func (s *CalendarService) DeleteEvent(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "event id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "calendar event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete calendar event")
	}
	s.logger.Info("calendar event deleted", zap.String("event_id", id))
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	"github.com/noah-isme/sma-academic-engine/internal/repository"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

type failingCalendarRepo struct {
	err error
}

func (f failingCalendarRepo) ListByMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	return nil, f.err
}

func (f failingCalendarRepo) Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	return models.CalendarEvent{}, f.err
}

func (f failingCalendarRepo) Delete(ctx context.Context, id string) error {
	return f.err
}

func TestCalendarServiceCreateAndList(t *testing.T) {
	svc := NewCalendarService(repository.NewMemoryCalendarRepository(), nil, nil)
	ctx := context.Background()

	start, err := svc.CreateEvent(ctx, dto.CreateCalendarEventRequest{Year: 2025, Month: 7, Day: 1, Type: "other", Label: "  Início do recesso "})
	require.NoError(t, err)
	assert.NotEmpty(t, start.ID)
	assert.Equal(t, "Início do recesso", start.Label)

	events, err := svc.ListMonth(ctx, 2025, 7)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.CalendarEventOther, events[0].Type)

	empty, err := svc.ListMonth(ctx, 2025, 8)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCalendarServiceRejectsInvalidEvents(t *testing.T) {
	svc := NewCalendarService(repository.NewMemoryCalendarRepository(), nil, nil)

	cases := []dto.CreateCalendarEventRequest{
		{Year: 2025, Month: 2, Day: 29, Type: "holiday"},
		{Year: 2025, Month: 13, Day: 1, Type: "holiday"},
		{Year: 2025, Month: 3, Day: 1, Type: "vacation"},
		{Year: 2025, Month: 3, Day: 0, Type: "exam"},
	}
	for _, req := range cases {
		_, err := svc.CreateEvent(context.Background(), req)
		var appErr *appErrors.Error
		require.True(t, errors.As(err, &appErr), "%+v", req)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}

	_, err := svc.ListMonth(context.Background(), 2025, 0)
	assert.Error(t, err)
}

func TestCalendarServiceDelete(t *testing.T) {
	svc := NewCalendarService(repository.NewMemoryCalendarRepository(), nil, nil)
	ctx := context.Background()
	event, err := svc.CreateEvent(ctx, dto.CreateCalendarEventRequest{Year: 2024, Month: 2, Day: 29, Type: "holiday"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	err = svc.DeleteEvent(ctx, event.ID)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCalendarServiceWrapsRepositoryFailures(t *testing.T) {
	svc := NewCalendarService(failingCalendarRepo{err: errors.New("db down")}, nil, nil)

	_, err := svc.ListMonth(context.Background(), 2025, 3)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)

	err = svc.DeleteEvent(context.Background(), "ev-1")
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/pkg/config"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

func defaultTimetableConfig() config.TimetableConfig {
	shift := config.ShiftConfig{
		StartTime:            "07:30",
		ClassDurationMinutes: 50,
		BreakDurationMinutes: 20,
		NumberOfClasses:      5,
		BreakAfterClass:      3,
	}
	afternoon := shift
	afternoon.StartTime = "13:30"
	return config.TimetableConfig{Morning: shift, Afternoon: afternoon}
}

func TestTimetableServiceClassSlots(t *testing.T) {
	svc, err := NewTimetableService(defaultTimetableConfig(), nil, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, svc.DaySlots(), 13)
	assert.True(t, svc.IsClassSlot("07:30"))
	assert.True(t, svc.IsClassSlot("16:20"))
	assert.False(t, svc.IsClassSlot("10:00"), "break slots hold no lessons")
	assert.False(t, svc.IsClassSlot("12:00"), "lunch holds no lessons")
	assert.False(t, svc.IsClassSlot("07:31"))

	slots := svc.DaySlots()
	slots[0].Start = "00:00"
	assert.Equal(t, "07:30", svc.DaySlots()[0].Start)
}

func TestTimetableServiceMorningOnly(t *testing.T) {
	cfg := defaultTimetableConfig()
	cfg.Afternoon = config.ShiftConfig{}

	svc, err := NewTimetableService(cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, svc.DaySlots(), 6)
	assert.False(t, svc.IsClassSlot("13:30"))
}

func TestNewTimetableServiceFailsOnInvalidShift(t *testing.T) {
	cfg := defaultTimetableConfig()
	cfg.Morning.NumberOfClasses = 0

	_, err := NewTimetableService(cfg, nil, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidConfiguration.Code, appErrors.FromError(err).Code)
}

func TestTimetableServicePreview(t *testing.T) {
	svc, err := NewTimetableService(defaultTimetableConfig(), nil, nil)
	require.NoError(t, err)

	slots, err := svc.Preview(dto.TimeSlotPreviewRequest{StartTime: "08:00", ClassDurationMinutes: 40, BreakDurationMinutes: 10, NumberOfClasses: 3, BreakAfterClass: 1})
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "08:40", slots[1].Start)
	assert.True(t, slots[1].IsBreak)
	assert.Equal(t, "10:10", slots[3].End)

	_, err = svc.Preview(dto.TimeSlotPreviewRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Preview(dto.TimeSlotPreviewRequest{StartTime: "08:00", ClassDurationMinutes: 40})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidConfiguration.Code, appErrors.FromError(err).Code)
}

package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

type timetableServiceMock struct {
	slots   []models.TimeSlot
	err     error
	lastReq dto.TimeSlotPreviewRequest
}

func (m *timetableServiceMock) DaySlots() []models.TimeSlot { return m.slots }

func (m *timetableServiceMock) Preview(req dto.TimeSlotPreviewRequest) ([]models.TimeSlot, error) {
	m.lastReq = req
	return m.slots, m.err
}

func TestTimetableHandlerDaySlots(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &timetableServiceMock{slots: []models.TimeSlot{{Start: "07:30", End: "08:20", Label: "Aula 1"}}}
	h := NewTimetableHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/timeslots", nil)
	h.DaySlots(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"start":"07:30","end":"08:20","is_break":false,"label":"Aula 1"}],"meta":{"count":1}}`, w.Body.String())
}

func TestTimetableHandlerPreviewInvalidConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &timetableServiceMock{err: appErrors.Clone(appErrors.ErrInvalidConfiguration, "number of classes must be greater than zero")}
	h := NewTimetableHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/timeslots/preview", bytes.NewBufferString(`{"start_time":"07:30","class_duration_minutes":50}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CONFIGURATION")
	assert.Equal(t, 50, svc.lastReq.ClassDurationMinutes)
}

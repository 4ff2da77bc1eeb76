package handler

import (
	"bytes"
	"context"
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

type calendarServiceMock struct {
	events    []models.CalendarEvent
	err       error
	lastReq   dto.CreateCalendarEventRequest
	deletedID string
	listed    []int
}

func (m *calendarServiceMock) ListMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	m.listed = []int{year, month}
	return m.events, m.err
}

func (m *calendarServiceMock) CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest) (*models.CalendarEvent, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.CalendarEvent{ID: "ev-1", Year: req.Year, Month: req.Month, Day: req.Day, Type: models.CalendarEventType(req.Type), Label: req.Label}, nil
}

func (m *calendarServiceMock) DeleteEvent(ctx context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func calendarRouter(h *CalendarHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/calendar/events", h.List)
	r.POST("/calendar/events", h.Create)
	r.DELETE("/calendar/events/:id", h.Delete)
	return r
}

func TestCalendarHandlerList(t *testing.T) {
	svc := &calendarServiceMock{events: []models.CalendarEvent{{ID: "ev-1", Year: 2025, Month: 3, Day: 5, Type: models.CalendarEventHoliday, Label: "Cinzas"}}}
	r := calendarRouter(NewCalendarHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar/events?year=2025&month=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{2025, 3}, svc.listed)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestCalendarHandlerListRejectsBadQuery(t *testing.T) {
	svc := &calendarServiceMock{}
	r := calendarRouter(NewCalendarHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar/events?year=2025&month=marco", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.listed)
}

func TestCalendarHandlerCreate(t *testing.T) {
	svc := &calendarServiceMock{}
	r := calendarRouter(NewCalendarHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/calendar/events", bytes.NewBufferString(`{"year":2025,"month":7,"day":1,"type":"other","label":"Inicio do recesso"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "other", svc.lastReq.Type)
	assert.Contains(t, w.Body.String(), `"id":"ev-1"`)
}

func TestCalendarHandlerDeleteNotFound(t *testing.T) {
	svc := &calendarServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "calendar event not found")}
	r := calendarRouter(NewCalendarHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/calendar/events/ev-9", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ev-9", svc.deletedID)
}

func TestCalendarHandlerDelete(t *testing.T) {
	svc := &calendarServiceMock{}
	r := calendarRouter(NewCalendarHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/calendar/events/ev-1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

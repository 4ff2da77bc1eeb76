package handler

import (
	"bytes"
	"context"
	"encoding/json"
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

type scheduleServiceMock struct {
	schedule   models.WeeklySchedule
	err        error
	lastSet    dto.SetScheduleEntryRequest
	lastRemove []string
}

func (m *scheduleServiceMock) SetEntry(ctx context.Context, req dto.SetScheduleEntryRequest) (models.WeeklySchedule, error) {
	m.lastSet = req
	return m.schedule, m.err
}

func (m *scheduleServiceMock) RemoveEntry(ctx context.Context, classID, weekday, slot string) (models.WeeklySchedule, error) {
	m.lastRemove = []string{classID, weekday, slot}
	return m.schedule, m.err
}

func (m *scheduleServiceMock) WeeklySchedule(ctx context.Context, classID string) models.WeeklySchedule {
	return m.schedule
}

type agendaServiceMock struct {
	agenda    models.EducatorAgenda
	conflicts []models.EducatorConflict
	err       error
}

func (m *agendaServiceMock) Agenda(ctx context.Context, educatorID string) (models.EducatorAgenda, error) {
	return m.agenda, m.err
}

func (m *agendaServiceMock) Conflicts(ctx context.Context) ([]models.EducatorConflict, error) {
	return m.conflicts, m.err
}

func scheduleRouter(h *ScheduleHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/classes/:classId/schedule", h.Get)
	r.PUT("/classes/:classId/schedule/:weekday/:slot", h.SetEntry)
	r.DELETE("/classes/:classId/schedule/:weekday/:slot", h.RemoveEntry)
	r.GET("/educators/:educatorId/agenda", h.Agenda)
	r.GET("/schedule/conflicts", h.Conflicts)
	return r
}

func TestScheduleHandlerSetEntry(t *testing.T) {
	svc := &scheduleServiceMock{schedule: models.WeeklySchedule{
		models.WeekdayMonday: {"07:30": {SubjectName: "Matemática", EducatorID: "prof-1"}},
	}}
	r := scheduleRouter(NewScheduleHandler(svc, &agendaServiceMock{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/classes/2/schedule/Segunda/07:30", bytes.NewBufferString(`{"subject_name":"Matemática","educator_id":"prof-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.SetScheduleEntryRequest{ClassID: "2", Weekday: "Segunda", SlotStart: "07:30", SubjectName: "Matemática", EducatorID: "prof-1"}, svc.lastSet)

	var body struct {
		Data models.WeeklySchedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, svc.schedule, body.Data)
}

func TestScheduleHandlerSetEntryInvalidBody(t *testing.T) {
	svc := &scheduleServiceMock{}
	r := scheduleRouter(NewScheduleHandler(svc, &agendaServiceMock{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/classes/2/schedule/Segunda/07:30", bytes.NewBufferString(`{"subject_name":"Matemática"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastSet.ClassID)
}

func TestScheduleHandlerPropagatesServiceErrors(t *testing.T) {
	svc := &scheduleServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "10:00 is not the start of a class slot")}
	r := scheduleRouter(NewScheduleHandler(svc, &agendaServiceMock{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/classes/2/schedule/Segunda/10:00", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"2", "Segunda", "10:00"}, svc.lastRemove)
	var body struct {
		Error appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, appErrors.ErrValidation.Code, body.Error.Code)
}

func TestScheduleHandlerAgendaAndConflicts(t *testing.T) {
	agendas := &agendaServiceMock{agenda: models.EducatorAgenda{
		models.WeekdayFriday: {"09:10": {Subject: "Física", ClassID: "3", ClassName: "3º C"}},
	}}
	r := scheduleRouter(NewScheduleHandler(&scheduleServiceMock{}, agendas))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/educators/prof-1/agenda", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Sexta"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule/conflicts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"count":0}}`, w.Body.String())
}

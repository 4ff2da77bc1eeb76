package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
	"github.com/noah-isme/sma-academic-engine/pkg/response"
)

type scheduleService interface {
	SetEntry(ctx context.Context, req dto.SetScheduleEntryRequest) (models.WeeklySchedule, error)
	RemoveEntry(ctx context.Context, classID, weekday, slot string) (models.WeeklySchedule, error)
	WeeklySchedule(ctx context.Context, classID string) models.WeeklySchedule
}

type agendaService interface {
	Agenda(ctx context.Context, educatorID string) (models.EducatorAgenda, error)
	Conflicts(ctx context.Context) ([]models.EducatorConflict, error)
}

// ScheduleHandler exposes class timetables and the agendas derived from them.
type ScheduleHandler struct {
	schedules scheduleService
	agendas   agendaService
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(schedules scheduleService, agendas agendaService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, agendas: agendas}
}

// Get godoc
// @Summary Get a class weekly schedule
// @Tags Schedules
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule := h.schedules.WeeklySchedule(c.Request.Context(), c.Param("classId"))
	response.OK(c, schedule)
}

// SetEntry godoc
// @Summary Place a lesson in a schedule cell
// @Tags Schedules
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param weekday path string true "Weekday (Segunda..Sexta)"
// @Param slot path string true "Slot start (HH:MM)"
// @Param payload body dto.ScheduleEntryBody true "Lesson"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId}/schedule/{weekday}/{slot} [put]
func (h *ScheduleHandler) SetEntry(c *gin.Context) {
	var body dto.ScheduleEntryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule entry payload"))
		return
	}
	schedule, err := h.schedules.SetEntry(c.Request.Context(), dto.SetScheduleEntryRequest{
		ClassID:     c.Param("classId"),
		Weekday:     c.Param("weekday"),
		SlotStart:   c.Param("slot"),
		SubjectName: body.SubjectName,
		EducatorID:  body.EducatorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, schedule)
}

// RemoveEntry godoc
// @Summary Clear a schedule cell
// @Tags Schedules
// @Produce json
// @Param classId path string true "Class ID"
// @Param weekday path string true "Weekday (Segunda..Sexta)"
// @Param slot path string true "Slot start (HH:MM)"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/schedule/{weekday}/{slot} [delete]
func (h *ScheduleHandler) RemoveEntry(c *gin.Context) {
	schedule, err := h.schedules.RemoveEntry(c.Request.Context(), c.Param("classId"), c.Param("weekday"), c.Param("slot"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, schedule)
}

// Agenda godoc
// @Summary Get an educator's weekly agenda
// @Tags Schedules
// @Produce json
// @Param educatorId path string true "Educator ID"
// @Success 200 {object} response.Envelope
// @Router /educators/{educatorId}/agenda [get]
func (h *ScheduleHandler) Agenda(c *gin.Context) {
	agenda, err := h.agendas.Agenda(c.Request.Context(), c.Param("educatorId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, agenda)
}

// Conflicts godoc
// @Summary List educators booked in two classes at once
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/conflicts [get]
func (h *ScheduleHandler) Conflicts(c *gin.Context) {
	conflicts, err := h.agendas.Conflicts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if conflicts == nil {
		conflicts = []models.EducatorConflict{}
	}
	response.Collection(c, conflicts, len(conflicts))
}

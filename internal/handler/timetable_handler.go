package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
	"github.com/noah-isme/sma-academic-engine/pkg/response"
)

type timetableService interface {
	DaySlots() []models.TimeSlot
	Preview(req dto.TimeSlotPreviewRequest) ([]models.TimeSlot, error)
}

// TimetableHandler exposes the configured school day.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler builds a new handler.
func NewTimetableHandler(service timetableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// DaySlots godoc
// @Summary List configured time slots
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timeslots [get]
func (h *TimetableHandler) DaySlots(c *gin.Context) {
	slots := h.service.DaySlots()
	response.Collection(c, slots, len(slots))
}

// Preview godoc
// @Summary Preview time slots for arbitrary shift parameters
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.TimeSlotPreviewRequest true "Shift parameters"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /timeslots/preview [post]
func (h *TimetableHandler) Preview(c *gin.Context) {
	var req dto.TimeSlotPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid time slot payload"))
		return
	}
	slots, err := h.service.Preview(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, slots)
}

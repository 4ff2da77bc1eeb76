package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
	"github.com/noah-isme/sma-academic-engine/pkg/response"
)

type calendarService interface {
	ListMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// CalendarHandler manages academic calendar events.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler builds a new handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// List godoc
// @Summary List calendar events of a month
// @Tags Calendar
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /calendar/events [get]
func (h *CalendarHandler) List(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year and month query parameters must be integers"))
		return
	}
	events, err := h.service.ListMonth(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Collection(c, events, len(events))
}

// Create godoc
// @Summary Add a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateCalendarEventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /calendar/events [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var req dto.CreateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid calendar payload"))
		return
	}
	event, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete godoc
// @Summary Remove a calendar event
// @Tags Calendar
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

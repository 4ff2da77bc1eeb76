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

type catalogService interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	UpsertClass(ctx context.Context, classID string, req dto.UpsertClassRequest) (*models.Class, error)
	ListSubjects(ctx context.Context, classID string) ([]models.Subject, error)
	UpsertSubject(ctx context.Context, classID, name string, req dto.UpsertSubjectRequest) (*models.Subject, error)
}

// CatalogHandler maintains class names and subject grading configuration.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler builds a new handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListClasses godoc
// @Summary List classes
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Collection(c, classes, len(classes))
}

// UpsertClass godoc
// @Summary Create or rename a class
// @Tags Catalog
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param payload body dto.UpsertClassRequest true "Class"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId} [put]
func (h *CatalogHandler) UpsertClass(c *gin.Context) {
	var req dto.UpsertClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	class, err := h.service.UpsertClass(c.Request.Context(), c.Param("classId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// ListSubjects godoc
// @Summary List the subjects configured for a class
// @Tags Catalog
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/subjects [get]
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.service.ListSubjects(c.Request.Context(), c.Param("classId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Collection(c, subjects, len(subjects))
}

// UpsertSubject godoc
// @Summary Configure how a subject's grades aggregate
// @Description Weighted subjects need at least one assessment; every weight must be positive.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param subject path string true "Subject name"
// @Param payload body dto.UpsertSubjectRequest true "Grading configuration"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId}/subjects/{subject} [put]
func (h *CatalogHandler) UpsertSubject(c *gin.Context) {
	var req dto.UpsertSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}
	subject, err := h.service.UpsertSubject(c.Request.Context(), c.Param("classId"), c.Param("subject"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subject)
}

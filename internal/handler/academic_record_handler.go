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

type academicRecordService interface {
	Record(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error)
	ReportCard(ctx context.Context, classID, studentID string) (*models.ReportCard, error)
	SetGrade(ctx context.Context, req dto.SetGradeRequest) (*models.StudentAcademicRecord, error)
	ClearGrade(ctx context.Context, classID, studentID, subject, assessment string) (*models.StudentAcademicRecord, error)
	SetAttendance(ctx context.Context, req dto.SetAttendanceRequest) (*models.StudentAcademicRecord, error)
	MonthlyAttendance(ctx context.Context, query dto.MonthlyAttendanceQuery) (*models.MonthlyAttendance, error)
	ClassGradeReport(ctx context.Context, classID, subject string) (*models.ClassGradeReport, error)
}

// AcademicRecordHandler exposes grade and attendance entry plus derived metrics.
type AcademicRecordHandler struct {
	service academicRecordService
}

// NewAcademicRecordHandler builds a new handler.
func NewAcademicRecordHandler(service academicRecordService) *AcademicRecordHandler {
	return &AcademicRecordHandler{service: service}
}

// Record godoc
// @Summary Get a student's academic record
// @Tags Academic Records
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/record [get]
func (h *AcademicRecordHandler) Record(c *gin.Context) {
	record, err := h.service.Record(c.Request.Context(), c.Param("classId"), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// ReportCard godoc
// @Summary Get final grades per subject
// @Tags Academic Records
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/report-card [get]
func (h *AcademicRecordHandler) ReportCard(c *gin.Context) {
	card, err := h.service.ReportCard(c.Request.Context(), c.Param("classId"), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, card)
}

// SetGrade godoc
// @Summary Record an assessment grade
// @Description A null value marks the assessment as not graded yet.
// @Tags Academic Records
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Param payload body dto.GradeBody true "Grade"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/grades [put]
func (h *AcademicRecordHandler) SetGrade(c *gin.Context) {
	var body dto.GradeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid grade payload"))
		return
	}
	record, err := h.service.SetGrade(c.Request.Context(), dto.SetGradeRequest{
		ClassID:    c.Param("classId"),
		StudentID:  c.Param("studentId"),
		Subject:    body.Subject,
		Assessment: body.Assessment,
		Value:      body.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// ClearGrade godoc
// @Summary Remove an assessment from a student's record
// @Tags Academic Records
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Param subject path string true "Subject name"
// @Param assessment path string true "Assessment name"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/grades/{subject}/{assessment} [delete]
func (h *AcademicRecordHandler) ClearGrade(c *gin.Context) {
	record, err := h.service.ClearGrade(c.Request.Context(), c.Param("classId"), c.Param("studentId"), c.Param("subject"), c.Param("assessment"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// SetAttendance godoc
// @Summary Record attendance for a date
// @Tags Academic Records
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param payload body dto.AttendanceBody true "Status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/attendance/{date} [put]
func (h *AcademicRecordHandler) SetAttendance(c *gin.Context) {
	var body dto.AttendanceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}
	record, err := h.service.SetAttendance(c.Request.Context(), dto.SetAttendanceRequest{
		ClassID:   c.Param("classId"),
		StudentID: c.Param("studentId"),
		Date:      c.Param("date"),
		Status:    body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// MonthlyAttendance godoc
// @Summary Count absences on school days of a month
// @Tags Academic Records
// @Produce json
// @Param classId path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/{classId}/students/{studentId}/attendance [get]
func (h *AcademicRecordHandler) MonthlyAttendance(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year and month query parameters must be integers"))
		return
	}
	result, err := h.service.MonthlyAttendance(c.Request.Context(), dto.MonthlyAttendanceQuery{
		ClassID:   c.Param("classId"),
		StudentID: c.Param("studentId"),
		Year:      year,
		Month:     month,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ClassGrades godoc
// @Summary Final grades of one subject across a class
// @Tags Academic Records
// @Produce json
// @Param classId path string true "Class ID"
// @Param subject path string true "Subject name"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/subjects/{subject}/grades [get]
func (h *AcademicRecordHandler) ClassGrades(c *gin.Context) {
	report, err := h.service.ClassGradeReport(c.Request.Context(), c.Param("classId"), c.Param("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

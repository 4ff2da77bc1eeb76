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
)

type academicRecordServiceMock struct {
	record        *models.StudentAcademicRecord
	monthly       *models.MonthlyAttendance
	err           error
	lastGrade     dto.SetGradeRequest
	lastAttend    dto.SetAttendanceRequest
	lastQuery     dto.MonthlyAttendanceQuery
	lastClear     []string
	monthlyCalled bool
}

func (m *academicRecordServiceMock) Record(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error) {
	return m.record, m.err
}

func (m *academicRecordServiceMock) ReportCard(ctx context.Context, classID, studentID string) (*models.ReportCard, error) {
	return &models.ReportCard{ClassID: classID, StudentID: studentID, Subjects: []models.SubjectGrade{
		{Subject: "Física", CalculationMethod: models.CalculationWeighted, Configured: true, Final: models.SentinelGrade(models.GradeNotComputable)},
		{Subject: "Matemática", CalculationMethod: models.CalculationArithmetic, Configured: true, Final: models.NumericGrade(7)},
	}}, m.err
}

func (m *academicRecordServiceMock) SetGrade(ctx context.Context, req dto.SetGradeRequest) (*models.StudentAcademicRecord, error) {
	m.lastGrade = req
	return m.record, m.err
}

func (m *academicRecordServiceMock) ClearGrade(ctx context.Context, classID, studentID, subject, assessment string) (*models.StudentAcademicRecord, error) {
	m.lastClear = []string{classID, studentID, subject, assessment}
	return m.record, m.err
}

func (m *academicRecordServiceMock) SetAttendance(ctx context.Context, req dto.SetAttendanceRequest) (*models.StudentAcademicRecord, error) {
	m.lastAttend = req
	return m.record, m.err
}

func (m *academicRecordServiceMock) MonthlyAttendance(ctx context.Context, query dto.MonthlyAttendanceQuery) (*models.MonthlyAttendance, error) {
	m.monthlyCalled = true
	m.lastQuery = query
	return m.monthly, m.err
}

func (m *academicRecordServiceMock) ClassGradeReport(ctx context.Context, classID, subject string) (*models.ClassGradeReport, error) {
	return &models.ClassGradeReport{ClassID: classID, Subject: subject}, m.err
}

func recordRouter(h *AcademicRecordHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	students := r.Group("/classes/:classId/students/:studentId")
	students.GET("/record", h.Record)
	students.GET("/report-card", h.ReportCard)
	students.PUT("/grades", h.SetGrade)
	students.DELETE("/grades/:subject/:assessment", h.ClearGrade)
	students.PUT("/attendance/:date", h.SetAttendance)
	students.GET("/attendance", h.MonthlyAttendance)
	r.GET("/classes/:classId/subjects/:subject/grades", h.ClassGrades)
	return r
}

func TestAcademicRecordHandlerSetGradeWithNullValue(t *testing.T) {
	svc := &academicRecordServiceMock{record: models.NewStudentAcademicRecord("s-1")}
	r := recordRouter(NewAcademicRecordHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/classes/1/students/s-1/grades", bytes.NewBufferString(`{"subject":"Física","assessment":"Prova 1","value":null}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", svc.lastGrade.ClassID)
	assert.Equal(t, "s-1", svc.lastGrade.StudentID)
	assert.Equal(t, "Prova 1", svc.lastGrade.Assessment)
	assert.Nil(t, svc.lastGrade.Value)
}

func TestAcademicRecordHandlerClearGrade(t *testing.T) {
	svc := &academicRecordServiceMock{record: models.NewStudentAcademicRecord("s-1")}
	r := recordRouter(NewAcademicRecordHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/classes/1/students/s-1/grades/Artes/P1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1", "s-1", "Artes", "P1"}, svc.lastClear)
}

func TestAcademicRecordHandlerSetAttendance(t *testing.T) {
	svc := &academicRecordServiceMock{record: models.NewStudentAcademicRecord("s-1")}
	r := recordRouter(NewAcademicRecordHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/classes/1/students/s-1/attendance/2025-03-04", bytes.NewBufferString(`{"status":"Falta"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.SetAttendanceRequest{ClassID: "1", StudentID: "s-1", Date: "2025-03-04", Status: "Falta"}, svc.lastAttend)
}

func TestAcademicRecordHandlerMonthlyAttendance(t *testing.T) {
	svc := &academicRecordServiceMock{monthly: &models.MonthlyAttendance{Year: 2025, Month: 3, TotalAbsences: 1}}
	r := recordRouter(NewAcademicRecordHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes/1/students/s-1/attendance?year=2025&month=3", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.MonthlyAttendanceQuery{ClassID: "1", StudentID: "s-1", Year: 2025, Month: 3}, svc.lastQuery)
	assert.Contains(t, w.Body.String(), `"total_absences":1`)

	svc.monthlyCalled = false
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes/1/students/s-1/attendance?year=abc&month=3", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.monthlyCalled)
}

func TestAcademicRecordHandlerReportCardRendersSentinels(t *testing.T) {
	r := recordRouter(NewAcademicRecordHandler(&academicRecordServiceMock{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes/1/students/s-1/report-card", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"final":"N/C"`)
	assert.Contains(t, w.Body.String(), `"final":7.0`)
}

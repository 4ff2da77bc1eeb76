package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

// AcademicRecordRepository persists student academic records per class.
type AcademicRecordRepository interface {
	Load(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error)
	Save(ctx context.Context, classID string, record *models.StudentAcademicRecord) error
	ListStudents(ctx context.Context, classID string) ([]string, error)
}

type subjectCatalog interface {
	ListByClass(ctx context.Context, classID string) ([]models.Subject, error)
}

type calendarReader interface {
	ListByMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error)
}

// AcademicRecordService records grades and attendance and derives final grades and absences.
type AcademicRecordService struct {
	records   AcademicRecordRepository
	subjects  subjectCatalog
	calendar  calendarReader
	validator *validator.Validate
	logger    *zap.Logger

	// serialises read-modify-write cycles on records
	writeMu sync.Mutex
}

// NewAcademicRecordService constructs the service.
func NewAcademicRecordService(records AcademicRecordRepository, subjects subjectCatalog, calendar calendarReader, validate *validator.Validate, logger *zap.Logger) *AcademicRecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcademicRecordService{
		records:   records,
		subjects:  subjects,
		calendar:  calendar,
		validator: validate,
		logger:    logger,
	}
}

// SetGrade records one assessment grade. A nil value marks the assessment as not graded yet.
func (s *AcademicRecordService) SetGrade(ctx context.Context, req dto.SetGradeRequest) (*models.StudentAcademicRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	subject := strings.TrimSpace(req.Subject)
	assessment := strings.TrimSpace(req.Assessment)
	var value *float64
	if req.Value != nil {
		v := *req.Value
		value = &v
	}

	return s.mutate(ctx, req.ClassID, req.StudentID, func(record *models.StudentAcademicRecord) bool {
		subjectKey := storedKey(record.Grades, subject)
		if record.Grades[subjectKey] == nil {
			record.Grades[subjectKey] = make(map[string]*float64)
		}
		record.Grades[subjectKey][storedKey(record.Grades[subjectKey], assessment)] = value
		return true
	})
}

// storedKey returns the existing key equal to name ignoring case, or name itself, so
// "prova 1" and "Prova 1" address the same grade.
func storedKey[V any](entries map[string]V, name string) string {
	if _, ok := entries[name]; ok {
		return name
	}
	for key := range entries {
		if strings.EqualFold(key, name) {
			return key
		}
	}
	return name
}

// ClearGrade removes an assessment from the student's record. Clearing a missing assessment is a no-op.
func (s *AcademicRecordService) ClearGrade(ctx context.Context, classID, studentID, subject, assessment string) (*models.StudentAcademicRecord, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(assessment) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject and assessment are required")
	}
	subject = strings.TrimSpace(subject)
	assessment = strings.TrimSpace(assessment)

	return s.mutate(ctx, classID, studentID, func(record *models.StudentAcademicRecord) bool {
		subjectKey := storedKey(record.Grades, subject)
		grades, ok := record.Grades[subjectKey]
		if !ok {
			return false
		}
		assessmentKey := storedKey(grades, assessment)
		if _, exists := grades[assessmentKey]; !exists {
			return false
		}
		delete(grades, assessmentKey)
		if len(grades) == 0 {
			delete(record.Grades, subjectKey)
		}
		return true
	})
}

// SetAttendance records the student's status for one date.
func (s *AcademicRecordService) SetAttendance(ctx context.Context, req dto.SetAttendanceRequest) (*models.StudentAcademicRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	status := models.AttendanceStatus(req.Status)
	return s.mutate(ctx, req.ClassID, req.StudentID, func(record *models.StudentAcademicRecord) bool {
		if record.Attendance[req.Date] == status {
			return false
		}
		record.Attendance[req.Date] = status
		return true
	})
}

// Record returns the student's record. Unknown students yield an empty record.
func (s *AcademicRecordService) Record(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error) {
	classID, studentID, err := requireStudent(classID, studentID)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, classID, studentID)
}

// ReportCard computes the final grade of every subject for one student.
func (s *AcademicRecordService) ReportCard(ctx context.Context, classID, studentID string) (*models.ReportCard, error) {
	record, err := s.Record(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}
	subjects, err := s.classSubjects(ctx, classID)
	if err != nil {
		return nil, err
	}
	return &models.ReportCard{
		ClassID:   strings.TrimSpace(classID),
		StudentID: record.StudentID,
		Subjects:  BuildReportCard(subjects, record),
	}, nil
}

// ClassGradeReport computes one subject's final grade for every student of a class.
func (s *AcademicRecordService) ClassGradeReport(ctx context.Context, classID, subjectName string) (*models.ClassGradeReport, error) {
	classID = strings.TrimSpace(classID)
	subjectName = strings.TrimSpace(subjectName)
	if classID == "" || subjectName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class id and subject are required")
	}
	subjects, err := s.classSubjects(ctx, classID)
	if err != nil {
		return nil, err
	}
	students, err := s.records.ListStudents(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	sort.Strings(students)

	subject := ResolveSubject(subjects, subjectName)
	rows := make([]models.ClassGradeRow, 0, len(students))
	for _, studentID := range students {
		record, err := s.load(ctx, classID, studentID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.ClassGradeRow{
			StudentID: studentID,
			Final:     FinalGrade(subject, lookupSubjectGrades(record.Grades, subjectName)),
		})
	}
	name := subjectName
	if subject != nil {
		name = subject.Name
	}
	return &models.ClassGradeReport{ClassID: classID, Subject: name, Rows: rows}, nil
}

// MonthlyAttendance counts a student's absences on the school days of a month.
func (s *AcademicRecordService) MonthlyAttendance(ctx context.Context, query dto.MonthlyAttendanceQuery) (*models.MonthlyAttendance, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance query")
	}
	record, err := s.Record(ctx, query.ClassID, query.StudentID)
	if err != nil {
		return nil, err
	}
	var events []models.CalendarEvent
	if s.calendar != nil {
		events, err = s.calendar.ListByMonth(ctx, query.Year, query.Month)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load calendar")
		}
	}
	result := AbsencesInMonth(record.Attendance, query.Year, query.Month, events)
	return &result, nil
}

func (s *AcademicRecordService) mutate(ctx context.Context, classID, studentID string, apply func(*models.StudentAcademicRecord) bool) (*models.StudentAcademicRecord, error) {
	classID, studentID, err := requireStudent(classID, studentID)
	if err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	record, err := s.load(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}
	if !apply(record) {
		return record, nil
	}
	if err := s.records.Save(ctx, classID, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save academic record")
	}
	s.logger.Debug("academic record updated",
		zap.String("class_id", classID),
		zap.String("student_id", studentID),
	)
	return record.Clone(), nil
}

func (s *AcademicRecordService) load(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error) {
	record, err := s.records.Load(ctx, classID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewStudentAcademicRecord(studentID), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load academic record")
	}
	if record == nil {
		return models.NewStudentAcademicRecord(studentID), nil
	}
	record = record.Clone()
	record.StudentID = studentID
	return record, nil
}

func (s *AcademicRecordService) classSubjects(ctx context.Context, classID string) ([]models.Subject, error) {
	if s.subjects == nil {
		return nil, nil
	}
	subjects, err := s.subjects.ListByClass(ctx, strings.TrimSpace(classID))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subjects")
	}
	return subjects, nil
}

func requireStudent(classID, studentID string) (string, string, error) {
	classID = strings.TrimSpace(classID)
	studentID = strings.TrimSpace(studentID)
	if classID == "" || studentID == "" {
		return "", "", appErrors.Clone(appErrors.ErrValidation, "class id and student id are required")
	}
	return classID, studentID, nil
}

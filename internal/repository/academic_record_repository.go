package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// AcademicRecordRepository stores grades and attendance marks per class and student.
type AcademicRecordRepository struct {
	db *sqlx.DB
}

// NewAcademicRecordRepository constructs the repository.
func NewAcademicRecordRepository(db *sqlx.DB) *AcademicRecordRepository {
	return &AcademicRecordRepository{db: db}
}

// Load assembles the student's record. It returns sql.ErrNoRows when the student has no data in the class.
func (r *AcademicRecordRepository) Load(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error) {
	const gradesQuery = `SELECT id, class_id, student_id, subject_name, assessment_name, grade_value
FROM student_grades WHERE class_id = $1 AND student_id = $2 ORDER BY subject_name ASC, assessment_name ASC`
	var grades []models.GradeRow
	if err := r.db.SelectContext(ctx, &grades, gradesQuery, classID, studentID); err != nil {
		return nil, fmt.Errorf("load grades: %w", err)
	}

	const attendanceQuery = `SELECT id, class_id, student_id, date_key, status
FROM student_attendance WHERE class_id = $1 AND student_id = $2 ORDER BY date_key ASC`
	var marks []models.AttendanceRow
	if err := r.db.SelectContext(ctx, &marks, attendanceQuery, classID, studentID); err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	if len(grades) == 0 && len(marks) == 0 {
		return nil, sql.ErrNoRows
	}

	record := models.NewStudentAcademicRecord(studentID)
	for _, row := range grades {
		if record.Grades[row.SubjectName] == nil {
			record.Grades[row.SubjectName] = make(map[string]*float64)
		}
		record.Grades[row.SubjectName][row.AssessmentName] = row.GradeValue
	}
	for _, row := range marks {
		record.Attendance[row.DateKey] = row.Status
	}
	return record, nil
}

// Save replaces the student's grades and attendance within one transaction and enrols the
// student in the class roster.
func (r *AcademicRecordRepository) Save(ctx context.Context, classID string, record *models.StudentAcademicRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin academic record tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `INSERT INTO class_students (class_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, classID, record.StudentID); err != nil {
		return fmt.Errorf("enrol student: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM student_grades WHERE class_id = $1 AND student_id = $2`, classID, record.StudentID); err != nil {
		return fmt.Errorf("clear grades: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM student_attendance WHERE class_id = $1 AND student_id = $2`, classID, record.StudentID); err != nil {
		return fmt.Errorf("clear attendance: %w", err)
	}

	const insertGrade = `INSERT INTO student_grades (id, class_id, student_id, subject_name, assessment_name, grade_value)
VALUES (:id, :class_id, :student_id, :subject_name, :assessment_name, :grade_value)`
	for _, row := range gradeRows(classID, record) {
		if _, err = tx.NamedExecContext(ctx, insertGrade, row); err != nil {
			return fmt.Errorf("insert grade: %w", err)
		}
	}

	const insertAttendance = `INSERT INTO student_attendance (id, class_id, student_id, date_key, status)
VALUES (:id, :class_id, :student_id, :date_key, :status)`
	for _, row := range attendanceRows(classID, record) {
		if _, err = tx.NamedExecContext(ctx, insertAttendance, row); err != nil {
			return fmt.Errorf("insert attendance: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit academic record tx: %w", err)
	}
	return nil
}

// ListStudents returns the roster of a class.
func (r *AcademicRecordRepository) ListStudents(ctx context.Context, classID string) ([]string, error) {
	const query = `SELECT student_id FROM class_students WHERE class_id = $1 ORDER BY student_id ASC`
	var students []string
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list class students: %w", err)
	}
	return students, nil
}

func gradeRows(classID string, record *models.StudentAcademicRecord) []models.GradeRow {
	subjects := make([]string, 0, len(record.Grades))
	for subject := range record.Grades {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	var rows []models.GradeRow
	for _, subject := range subjects {
		assessments := make([]string, 0, len(record.Grades[subject]))
		for name := range record.Grades[subject] {
			assessments = append(assessments, name)
		}
		sort.Strings(assessments)
		for _, name := range assessments {
			rows = append(rows, models.GradeRow{
				ID:             uuid.NewString(),
				ClassID:        classID,
				StudentID:      record.StudentID,
				SubjectName:    subject,
				AssessmentName: name,
				GradeValue:     record.Grades[subject][name],
			})
		}
	}
	return rows
}

func attendanceRows(classID string, record *models.StudentAcademicRecord) []models.AttendanceRow {
	keys := make([]string, 0, len(record.Attendance))
	for key := range record.Attendance {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]models.AttendanceRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, models.AttendanceRow{
			ID:        uuid.NewString(),
			ClassID:   classID,
			StudentID: record.StudentID,
			DateKey:   key,
			Status:    record.Attendance[key],
		})
	}
	return rows
}

package models

import (
	"encoding/json"
	"strconv"
)

// GradeSentinel marks a final grade that cannot be shown as a number.
type GradeSentinel string

const (
	// GradeNotRecorded means no assessment was ever recorded for the subject.
	GradeNotRecorded GradeSentinel = "-"
	// GradeNotLaunched means assessments exist but none has a value yet.
	GradeNotLaunched GradeSentinel = "N/L"
	// GradeNotComputable means weighted aggregation has no weight to divide by.
	GradeNotComputable GradeSentinel = "N/C"
)

// GradeResult is either a numeric final grade or a display sentinel.
type GradeResult struct {
	Value    float64
	Sentinel GradeSentinel
}

// NumericGrade wraps a computed grade.
func NumericGrade(v float64) GradeResult {
	return GradeResult{Value: v}
}

// SentinelGrade wraps a non-numeric display state.
func SentinelGrade(s GradeSentinel) GradeResult {
	return GradeResult{Sentinel: s}
}

// IsNumeric reports whether the result carries a number.
func (g GradeResult) IsNumeric() bool {
	return g.Sentinel == ""
}

// String formats numbers with one decimal place.
func (g GradeResult) String() string {
	if !g.IsNumeric() {
		return string(g.Sentinel)
	}
	return strconv.FormatFloat(g.Value, 'f', 1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and sentinels as strings.
func (g GradeResult) MarshalJSON() ([]byte, error) {
	if !g.IsNumeric() {
		return json.Marshal(string(g.Sentinel))
	}
	return []byte(g.String()), nil
}

// SubjectGrade is the final grade of one subject in a report card.
type SubjectGrade struct {
	Subject           string            `json:"subject"`
	CalculationMethod CalculationMethod `json:"calculation_method"`
	Configured        bool              `json:"configured"`
	Final             GradeResult       `json:"final"`
}

// ReportCard lists final grades per subject for one student.
type ReportCard struct {
	ClassID   string         `json:"class_id"`
	StudentID string         `json:"student_id"`
	Subjects  []SubjectGrade `json:"subjects"`
}

// ClassGradeRow is one student's final grade in a class-wide subject report.
type ClassGradeRow struct {
	StudentID string      `json:"student_id"`
	Final     GradeResult `json:"final"`
}

// ClassGradeReport aggregates one subject's final grades across a class.
type ClassGradeReport struct {
	ClassID string          `json:"class_id"`
	Subject string          `json:"subject"`
	Rows    []ClassGradeRow `json:"rows"`
}

// GradeRow is the persisted form of one assessment grade. A nil value means "not graded yet".
type GradeRow struct {
	ID             string   `db:"id"`
	ClassID        string   `db:"class_id"`
	StudentID      string   `db:"student_id"`
	SubjectName    string   `db:"subject_name"`
	AssessmentName string   `db:"assessment_name"`
	GradeValue     *float64 `db:"grade_value"`
}

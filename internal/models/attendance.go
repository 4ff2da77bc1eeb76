package models

// AttendanceStatus represents a student's status for a school day.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "Presente"
	AttendanceAbsent    AttendanceStatus = "Falta"
	AttendanceJustified AttendanceStatus = "Justificado"
)

// DateKeyLayout is the layout of attendance date keys.
const DateKeyLayout = "2006-01-02"

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceJustified:
		return true
	default:
		return false
	}
}

// StudentAcademicRecord holds grades and attendance for one student in one class-term.
type StudentAcademicRecord struct {
	StudentID  string                         `json:"student_id"`
	Grades     map[string]map[string]*float64 `json:"grades"`
	Attendance map[string]AttendanceStatus    `json:"attendance"`
}

// NewStudentAcademicRecord returns an empty record with initialised maps.
func NewStudentAcademicRecord(studentID string) *StudentAcademicRecord {
	return &StudentAcademicRecord{
		StudentID:  studentID,
		Grades:     make(map[string]map[string]*float64),
		Attendance: make(map[string]AttendanceStatus),
	}
}

// Clone returns a deep copy of the record.
func (r *StudentAcademicRecord) Clone() *StudentAcademicRecord {
	if r == nil {
		return nil
	}
	out := NewStudentAcademicRecord(r.StudentID)
	for subject, assessments := range r.Grades {
		copied := make(map[string]*float64, len(assessments))
		for name, value := range assessments {
			if value == nil {
				copied[name] = nil
				continue
			}
			v := *value
			copied[name] = &v
		}
		out.Grades[subject] = copied
	}
	for key, status := range r.Attendance {
		out.Attendance[key] = status
	}
	return out
}

// AttendanceRow is the persisted form of one attendance mark.
type AttendanceRow struct {
	ID        string           `db:"id"`
	ClassID   string           `db:"class_id"`
	StudentID string           `db:"student_id"`
	DateKey   string           `db:"date_key"`
	Status    AttendanceStatus `db:"status"`
}

// NonSchoolReason explains why a calendar day is excluded from attendance.
type NonSchoolReason string

const (
	NonSchoolWeekend NonSchoolReason = "weekend"
	NonSchoolHoliday NonSchoolReason = "holiday"
	NonSchoolRecess  NonSchoolReason = "recess"
	NonSchoolNoClass NonSchoolReason = "no_class"
)

// MonthlyAttendance summarises one student's attendance in a calendar month.
type MonthlyAttendance struct {
	Year          int                      `json:"year"`
	Month         int                      `json:"month"`
	PerDay        map[int]AttendanceStatus `json:"per_day"`
	NonSchoolDays map[int]NonSchoolReason  `json:"non_school_days"`
	SchoolDays    int                      `json:"school_days"`
	TotalAbsences int                      `json:"total_absences"`
}

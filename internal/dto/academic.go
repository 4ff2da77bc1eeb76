package dto

// SetGradeRequest records (or clears, with a nil value) one assessment grade.
type SetGradeRequest struct {
	ClassID    string   `json:"class_id" validate:"required"`
	StudentID  string   `json:"student_id" validate:"required"`
	Subject    string   `json:"subject" validate:"required"`
	Assessment string   `json:"assessment" validate:"required"`
	Value      *float64 `json:"value" validate:"omitempty,min=0,max=10"`
}

// GradeBody is the HTTP body for SetGradeRequest; class and student come from the path.
type GradeBody struct {
	Subject    string   `json:"subject" binding:"required"`
	Assessment string   `json:"assessment" binding:"required"`
	Value      *float64 `json:"value"`
}

// SetAttendanceRequest records a student's status for a date.
type SetAttendanceRequest struct {
	ClassID   string `json:"class_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=Presente Falta Justificado"`
}

// AttendanceBody is the HTTP body for SetAttendanceRequest.
type AttendanceBody struct {
	Status string `json:"status" binding:"required"`
}

// MonthlyAttendanceQuery scopes the monthly absence computation.
type MonthlyAttendanceQuery struct {
	ClassID   string `validate:"required"`
	StudentID string `validate:"required"`
	Year      int    `validate:"min=1"`
	Month     int    `validate:"min=1,max=12"`
}

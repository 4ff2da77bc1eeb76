package dto

// TimeSlotPreviewRequest carries shift parameters to preview. Numeric checks are left to the
// generator so that bad values surface as configuration errors.
type TimeSlotPreviewRequest struct {
	StartTime            string `json:"start_time" validate:"required"`
	ClassDurationMinutes int    `json:"class_duration_minutes"`
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	NumberOfClasses      int    `json:"number_of_classes"`
	BreakAfterClass      int    `json:"break_after_class"`
}

// SetScheduleEntryRequest places a lesson into a class timetable cell.
type SetScheduleEntryRequest struct {
	ClassID     string `json:"class_id" validate:"required"`
	Weekday     string `json:"weekday" validate:"required"`
	SlotStart   string `json:"slot_start" validate:"required"`
	SubjectName string `json:"subject_name" validate:"required"`
	EducatorID  string `json:"educator_id" validate:"required"`
}

// ScheduleEntryBody is the HTTP body for placing a lesson; the cell comes from the path.
type ScheduleEntryBody struct {
	SubjectName string `json:"subject_name" binding:"required"`
	EducatorID  string `json:"educator_id" binding:"required"`
}

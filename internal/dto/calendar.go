package dto

// CreateCalendarEventRequest adds one day entry to the academic calendar.
type CreateCalendarEventRequest struct {
	Year  int    `json:"year" validate:"min=1"`
	Month int    `json:"month" validate:"min=1,max=12"`
	Day   int    `json:"day" validate:"min=1,max=31"`
	Type  string `json:"type" validate:"required,oneof=exam holiday event other"`
	Label string `json:"label" validate:"max=255"`
}

package dto

// UpsertClassRequest names a class group; the id comes from the path.
type UpsertClassRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Shift string `json:"shift" validate:"omitempty,oneof=morning afternoon"`
}

// AssessmentRequest configures one weighted activity of a subject.
type AssessmentRequest struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

// UpsertSubjectRequest configures how a subject's grades aggregate in a class.
type UpsertSubjectRequest struct {
	CalculationMethod string              `json:"calculation_method" validate:"required,oneof=arithmetic weighted"`
	Assessments       []AssessmentRequest `json:"assessments" validate:"dive"`
}

package models

// CalculationMethod represents how a subject's final grade is aggregated.
type CalculationMethod string

const (
	// CalculationArithmetic averages every recorded grade equally.
	CalculationArithmetic CalculationMethod = "arithmetic"
	// CalculationWeighted applies configured assessment weights.
	CalculationWeighted CalculationMethod = "weighted"
)

// Valid returns true when the method is supported.
func (m CalculationMethod) Valid() bool {
	return m == CalculationArithmetic || m == CalculationWeighted
}

// Assessment is a graded activity configured for a subject.
type Assessment struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Subject defines how grades for a subject aggregate.
type Subject struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	CalculationMethod CalculationMethod `json:"calculation_method"`
	Assessments       []Assessment      `json:"assessments"`
}

// HasPositiveWeights reports whether every configured assessment weighs more than zero.
func (s Subject) HasPositiveWeights() bool {
	for _, assessment := range s.Assessments {
		if assessment.Weight <= 0 {
			return false
		}
	}
	return true
}

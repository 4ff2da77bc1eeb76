package service

import (
	"math"
	"sort"
	"strings"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// FinalGrade aggregates a student's grades for one subject.
//
// A nil subject means the subject is not configured; its grades are averaged arithmetically over
// whatever assessment keys are present. Results that cannot be shown as a number are returned as
// sentinels: "-" when nothing was ever recorded, "N/L" when every recorded value is still empty
// and "N/C" when a weighted subject has no graded, weighted assessment.
func FinalGrade(subject *models.Subject, grades map[string]*float64) models.GradeResult {
	if len(grades) == 0 {
		return models.SentinelGrade(models.GradeNotRecorded)
	}
	if !hasAnyGrade(grades) {
		return models.SentinelGrade(models.GradeNotLaunched)
	}
	if subject != nil && subject.CalculationMethod == models.CalculationWeighted {
		return weightedGrade(subject.Assessments, grades)
	}
	return arithmeticGrade(grades)
}

func arithmeticGrade(grades map[string]*float64) models.GradeResult {
	sum := 0.0
	count := 0
	for _, value := range grades {
		if value == nil {
			continue
		}
		sum += *value
		count++
	}
	return models.NumericGrade(roundOneDecimal(sum / float64(count)))
}

func weightedGrade(assessments []models.Assessment, grades map[string]*float64) models.GradeResult {
	weightedSum := 0.0
	totalWeight := 0.0
	for _, assessment := range assessments {
		if assessment.Weight <= 0 {
			continue
		}
		value, ok := lookupAssessmentGrade(grades, assessment.Name)
		if !ok || value == nil {
			continue
		}
		weightedSum += *value * assessment.Weight
		totalWeight += assessment.Weight
	}
	if totalWeight == 0 {
		return models.SentinelGrade(models.GradeNotComputable)
	}
	return models.NumericGrade(roundOneDecimal(weightedSum / totalWeight))
}

// lookupAssessmentGrade matches assessment names the same way subjects are matched:
// exact key first, then trimmed and case-insensitive.
func lookupAssessmentGrade(grades map[string]*float64, name string) (*float64, bool) {
	if value, ok := grades[name]; ok {
		return value, true
	}
	target := strings.TrimSpace(name)
	for key, value := range grades {
		if strings.EqualFold(strings.TrimSpace(key), target) {
			return value, true
		}
	}
	return nil, false
}

func hasAnyGrade(grades map[string]*float64) bool {
	for _, value := range grades {
		if value != nil {
			return true
		}
	}
	return false
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// ResolveSubject finds the configured subject by case-insensitive name.
func ResolveSubject(subjects []models.Subject, name string) *models.Subject {
	for i := range subjects {
		if strings.EqualFold(strings.TrimSpace(subjects[i].Name), strings.TrimSpace(name)) {
			return &subjects[i]
		}
	}
	return nil
}

// BuildReportCard computes the final grade of every configured subject and of every ad hoc
// subject found in the record, sorted by subject name.
func BuildReportCard(subjects []models.Subject, record *models.StudentAcademicRecord) []models.SubjectGrade {
	var grades map[string]map[string]*float64
	if record != nil {
		grades = record.Grades
	}

	seen := make(map[string]bool)
	rows := make([]models.SubjectGrade, 0, len(subjects)+len(grades))
	for i := range subjects {
		subject := &subjects[i]
		key := strings.ToLower(strings.TrimSpace(subject.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, models.SubjectGrade{
			Subject:           subject.Name,
			CalculationMethod: methodOrDefault(subject.CalculationMethod),
			Configured:        true,
			Final:             FinalGrade(subject, lookupSubjectGrades(grades, subject.Name)),
		})
	}
	for name, values := range grades {
		if seen[strings.ToLower(strings.TrimSpace(name))] {
			continue
		}
		rows = append(rows, models.SubjectGrade{
			Subject:           name,
			CalculationMethod: models.CalculationArithmetic,
			Final:             FinalGrade(nil, values),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Subject < rows[j].Subject })
	return rows
}

func lookupSubjectGrades(grades map[string]map[string]*float64, name string) map[string]*float64 {
	if values, ok := grades[name]; ok {
		return values
	}
	for key, values := range grades {
		if strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(name)) {
			return values
		}
	}
	return nil
}

func methodOrDefault(method models.CalculationMethod) models.CalculationMethod {
	if method.Valid() {
		return method
	}
	return models.CalculationArithmetic
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// SubjectRepository reads subject grading configuration.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs the repository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

type subjectRow struct {
	ID                string         `db:"id"`
	Name              string         `db:"name"`
	CalculationMethod string         `db:"calculation_method"`
	Assessments       types.JSONText `db:"assessments"`
}

// ListByClass returns subjects taught in a class with their assessment weights.
func (r *SubjectRepository) ListByClass(ctx context.Context, classID string) ([]models.Subject, error) {
	const query = `SELECT s.id, s.name, s.calculation_method, s.assessments
FROM subjects s
JOIN class_subjects cs ON cs.subject_id = s.id
WHERE cs.class_id = $1
ORDER BY s.name ASC`
	var rows []subjectRow
	if err := r.db.SelectContext(ctx, &rows, query, classID); err != nil {
		return nil, fmt.Errorf("list subjects for class %s: %w", classID, err)
	}

	subjects := make([]models.Subject, 0, len(rows))
	for _, row := range rows {
		subject := models.Subject{
			ID:                row.ID,
			Name:              row.Name,
			CalculationMethod: models.CalculationMethod(row.CalculationMethod),
		}
		if hasAssessments(row.Assessments) {
			if err := row.Assessments.Unmarshal(&subject.Assessments); err != nil {
				return nil, fmt.Errorf("decode assessments for subject %s: %w", row.ID, err)
			}
		}
		if !subject.HasPositiveWeights() {
			return nil, fmt.Errorf("subject %s has a non-positive assessment weight", row.ID)
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// Upsert stores the grading configuration of a subject taught in a class. Subjects are
// matched by case-insensitive name within the class; unknown names get a new id.
func (r *SubjectRepository) Upsert(ctx context.Context, classID string, subject models.Subject) (models.Subject, error) {
	assessments, err := json.Marshal(subject.Assessments)
	if err != nil {
		return models.Subject{}, fmt.Errorf("encode assessments: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Subject{}, fmt.Errorf("begin subject tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const lookup = `SELECT s.id FROM subjects s
JOIN class_subjects cs ON cs.subject_id = s.id
WHERE cs.class_id = $1 AND LOWER(s.name) = LOWER($2)`
	var id string
	switch err = tx.GetContext(ctx, &id, lookup, classID, subject.Name); {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		err = nil
	case err != nil:
		return models.Subject{}, fmt.Errorf("find subject %s: %w", subject.Name, err)
	}
	subject.ID = id

	const upsert = `INSERT INTO subjects (id, name, calculation_method, assessments)
VALUES (:id, :name, :calculation_method, :assessments)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, calculation_method = EXCLUDED.calculation_method, assessments = EXCLUDED.assessments`
	row := subjectRow{ID: id, Name: subject.Name, CalculationMethod: string(subject.CalculationMethod), Assessments: types.JSONText(assessments)}
	if _, err = tx.NamedExecContext(ctx, upsert, row); err != nil {
		return models.Subject{}, fmt.Errorf("upsert subject %s: %w", subject.Name, err)
	}

	const link = `INSERT INTO class_subjects (class_id, subject_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err = tx.ExecContext(ctx, link, classID, id); err != nil {
		return models.Subject{}, fmt.Errorf("link subject %s to class %s: %w", id, classID, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Subject{}, fmt.Errorf("commit subject tx: %w", err)
	}
	return subject, nil
}

// hasAssessments treats NULL (scanned as "{}") and JSON null as an empty list.
func hasAssessments(raw types.JSONText) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "{}", "null":
		return false
	}
	return true
}

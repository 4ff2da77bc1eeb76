package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// CalendarRepository stores academic calendar events.
type CalendarRepository struct {
	db *sqlx.DB
}

// NewCalendarRepository constructs the repository.
func NewCalendarRepository(db *sqlx.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// ListByMonth returns the events of a month ordered by day.
func (r *CalendarRepository) ListByMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	const query = `SELECT id, year, month, day, type, label FROM calendar_events WHERE year = $1 AND month = $2 ORDER BY day ASC, id ASC`
	var events []models.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, year, month); err != nil {
		return nil, fmt.Errorf("list calendar events for %s: %w", models.CalendarKey(year, month), err)
	}
	return events, nil
}

// Create inserts an event, assigning an id when missing.
func (r *CalendarRepository) Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	const query = `INSERT INTO calendar_events (id, year, month, day, type, label) VALUES (:id, :year, :month, :day, :type, :label)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("create calendar event: %w", err)
	}
	return event, nil
}

// Delete removes an event. sql.ErrNoRows is returned when the id is unknown.
func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

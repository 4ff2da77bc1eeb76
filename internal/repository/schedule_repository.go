package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// ScheduleRepository persists weekly schedules as one row per occupied cell.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, class_id, weekday, slot_start, subject_name, educator_id`

// LoadAll returns every stored schedule keyed by class id.
func (r *ScheduleRepository) LoadAll(ctx context.Context) (map[string]models.WeeklySchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries ORDER BY class_id ASC, weekday ASC, slot_start ASC`
	var rows []models.ScheduleEntryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}
	out := make(map[string]models.WeeklySchedule)
	for _, row := range rows {
		schedule, ok := out[row.ClassID]
		if !ok {
			schedule = make(models.WeeklySchedule)
			out[row.ClassID] = schedule
		}
		addScheduleRow(schedule, row)
	}
	return out, nil
}

// Load returns the schedule of one class. Unknown classes yield an empty schedule.
func (r *ScheduleRepository) Load(ctx context.Context, classID string) (models.WeeklySchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE class_id = $1 ORDER BY weekday ASC, slot_start ASC`
	var rows []models.ScheduleEntryRow
	if err := r.db.SelectContext(ctx, &rows, query, classID); err != nil {
		return nil, fmt.Errorf("load schedule for class %s: %w", classID, err)
	}
	schedule := make(models.WeeklySchedule)
	for _, row := range rows {
		addScheduleRow(schedule, row)
	}
	return schedule, nil
}

// Save replaces the stored schedule of a class in a single transaction.
func (r *ScheduleRepository) Save(ctx context.Context, classID string, schedule models.WeeklySchedule) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schedule tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM schedule_entries WHERE class_id = $1`, classID); err != nil {
		return fmt.Errorf("clear schedule for class %s: %w", classID, err)
	}

	const insert = `INSERT INTO schedule_entries (id, class_id, weekday, slot_start, subject_name, educator_id)
VALUES (:id, :class_id, :weekday, :slot_start, :subject_name, :educator_id)`
	for _, row := range scheduleRows(classID, schedule) {
		if _, err = tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("insert schedule entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit schedule tx: %w", err)
	}
	return nil
}

func addScheduleRow(schedule models.WeeklySchedule, row models.ScheduleEntryRow) {
	if schedule[row.Weekday] == nil {
		schedule[row.Weekday] = make(map[string]models.ScheduleEntry)
	}
	schedule[row.Weekday][row.SlotStart] = models.ScheduleEntry{SubjectName: row.SubjectName, EducatorID: row.EducatorID}
}

// scheduleRows flattens a schedule in weekday then slot order.
func scheduleRows(classID string, schedule models.WeeklySchedule) []models.ScheduleEntryRow {
	var rows []models.ScheduleEntryRow
	for _, day := range models.Weekdays() {
		slots := schedule[day]
		starts := make([]string, 0, len(slots))
		for start := range slots {
			starts = append(starts, start)
		}
		sort.Strings(starts)
		for _, start := range starts {
			entry := slots[start]
			rows = append(rows, models.ScheduleEntryRow{
				ID:          uuid.NewString(),
				ClassID:     classID,
				Weekday:     day,
				SlotStart:   start,
				SubjectName: entry.SubjectName,
				EducatorID:  entry.EducatorID,
			})
		}
	}
	return rows
}

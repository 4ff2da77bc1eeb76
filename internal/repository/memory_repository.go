package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/sma-academic-engine/internal/models"
)

// MemoryAcademicRecordRepository keeps academic records in process when persistence is disabled.
type MemoryAcademicRecordRepository struct {
	mu      sync.RWMutex
	records map[string]map[string]*models.StudentAcademicRecord
}

// NewMemoryAcademicRecordRepository constructs an empty store.
func NewMemoryAcademicRecordRepository() *MemoryAcademicRecordRepository {
	return &MemoryAcademicRecordRepository{records: make(map[string]map[string]*models.StudentAcademicRecord)}
}

// Load returns a copy of the stored record or sql.ErrNoRows.
func (r *MemoryAcademicRecordRepository) Load(ctx context.Context, classID, studentID string) (*models.StudentAcademicRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[classID][studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return record.Clone(), nil
}

// Save stores a copy of the record.
func (r *MemoryAcademicRecordRepository) Save(ctx context.Context, classID string, record *models.StudentAcademicRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.records[classID] == nil {
		r.records[classID] = make(map[string]*models.StudentAcademicRecord)
	}
	r.records[classID][record.StudentID] = record.Clone()
	return nil
}

// ListStudents returns students with a stored record in the class.
func (r *MemoryAcademicRecordRepository) ListStudents(ctx context.Context, classID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	students := make([]string, 0, len(r.records[classID]))
	for id := range r.records[classID] {
		students = append(students, id)
	}
	sort.Strings(students)
	return students, nil
}

// MemoryCalendarRepository serves calendar events held in process.
type MemoryCalendarRepository struct {
	mu     sync.RWMutex
	events map[string][]models.CalendarEvent
}

// NewMemoryCalendarRepository constructs an empty calendar.
func NewMemoryCalendarRepository() *MemoryCalendarRepository {
	return &MemoryCalendarRepository{events: make(map[string][]models.CalendarEvent)}
}

// Create appends an event to its month, assigning an id when missing.
func (r *MemoryCalendarRepository) Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := models.CalendarKey(event.Year, event.Month)
	r.events[key] = append(r.events[key], event)
	return event, nil
}

// Delete removes an event by id or returns sql.ErrNoRows.
func (r *MemoryCalendarRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, events := range r.events {
		for i, event := range events {
			if event.ID != id {
				continue
			}
			r.events[key] = append(events[:i:i], events[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// ListByMonth returns a copy of the month's events ordered by day.
func (r *MemoryCalendarRepository) ListByMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := append([]models.CalendarEvent(nil), r.events[models.CalendarKey(year, month)]...)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Day < events[j].Day })
	return events, nil
}

// MemoryClassRepository keeps class names in process when persistence is disabled.
type MemoryClassRepository struct {
	mu      sync.RWMutex
	classes map[string]models.Class
}

// NewMemoryClassRepository constructs an empty class directory.
func NewMemoryClassRepository() *MemoryClassRepository {
	return &MemoryClassRepository{classes: make(map[string]models.Class)}
}

// List returns every class ordered by id.
func (r *MemoryClassRepository) List(ctx context.Context) ([]models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	classes := make([]models.Class, 0, len(r.classes))
	for _, class := range r.classes {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes, nil
}

// Upsert creates or renames a class, keeping its original creation time.
func (r *MemoryClassRepository) Upsert(ctx context.Context, class models.Class) (models.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	class.CreatedAt = now
	if existing, ok := r.classes[class.ID]; ok {
		class.CreatedAt = existing.CreatedAt
	}
	class.UpdatedAt = now
	r.classes[class.ID] = class
	return class, nil
}

// MemorySubjectRepository keeps per-class subject grading configuration in process.
type MemorySubjectRepository struct {
	mu       sync.RWMutex
	subjects map[string][]models.Subject
}

// NewMemorySubjectRepository constructs an empty catalog.
func NewMemorySubjectRepository() *MemorySubjectRepository {
	return &MemorySubjectRepository{subjects: make(map[string][]models.Subject)}
}

// ListByClass returns copies of the class's subjects ordered by name.
func (r *MemorySubjectRepository) ListByClass(ctx context.Context, classID string) ([]models.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subjects := make([]models.Subject, 0, len(r.subjects[classID]))
	for _, subject := range r.subjects[classID] {
		subject.Assessments = append([]models.Assessment(nil), subject.Assessments...)
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
	return subjects, nil
}

// Upsert replaces the subject with the same case-insensitive name or adds it to the class.
func (r *MemorySubjectRepository) Upsert(ctx context.Context, classID string, subject models.Subject) (models.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subject.Assessments = append([]models.Assessment(nil), subject.Assessments...)
	subjects := r.subjects[classID]
	for i := range subjects {
		if strings.EqualFold(subjects[i].Name, subject.Name) {
			subject.ID = subjects[i].ID
			subjects[i] = subject
			return subject, nil
		}
	}
	subject.ID = uuid.NewString()
	r.subjects[classID] = append(subjects, subject)
	return subject, nil
}

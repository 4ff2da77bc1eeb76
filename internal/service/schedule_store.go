package service

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

// ScheduleRepository persists weekly schedules per class.
type ScheduleRepository interface {
	LoadAll(ctx context.Context) (map[string]models.WeeklySchedule, error)
	Save(ctx context.Context, classID string, schedule models.WeeklySchedule) error
}

// ScheduleStore is the single source of truth for placed lessons. Writes are serialised and
// persisted in issue order; readers always receive copies taken under the read lock.
type ScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string]models.WeeklySchedule
	version   uint64
	repo      ScheduleRepository
	logger    *zap.Logger
}

// NewScheduleStore constructs a store. A nil repository keeps schedules in memory only.
func NewScheduleStore(repo ScheduleRepository, logger *zap.Logger) *ScheduleStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleStore{
		schedules: make(map[string]models.WeeklySchedule),
		repo:      repo,
		logger:    logger,
	}
}

// Hydrate replaces the in-memory state with every schedule stored in the repository.
func (s *ScheduleStore) Hydrate(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	loaded, err := s.repo.LoadAll(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedules")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = make(map[string]models.WeeklySchedule, len(loaded))
	for classID, schedule := range loaded {
		s.schedules[classID] = schedule.Clone()
	}
	s.version++
	s.logger.Info("schedules hydrated", zap.Int("classes", len(loaded)))
	return nil
}

// SetEntry upserts the lesson at (classID, day, slotStart), overwriting any existing entry.
// Educator double-booking across classes is not checked.
func (s *ScheduleStore) SetEntry(ctx context.Context, classID string, day models.Weekday, slotStart string, entry models.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.schedules[classID].Clone()
	if next[day] == nil {
		next[day] = make(map[string]models.ScheduleEntry)
	}
	next[day][slotStart] = entry
	return s.commit(ctx, classID, next)
}

// RemoveEntry deletes the lesson at (classID, day, slotStart). Removing an empty cell is a no-op.
func (s *ScheduleStore) RemoveEntry(ctx context.Context, classID string, day models.Weekday, slotStart string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.schedules[classID]
	if !ok {
		return nil
	}
	if _, exists := current.Entry(day, slotStart); !exists {
		return nil
	}
	next := current.Clone()
	delete(next[day], slotStart)
	if len(next[day]) == 0 {
		delete(next, day)
	}
	return s.commit(ctx, classID, next)
}

// commit persists next and swaps it in. Callers must hold the write lock.
func (s *ScheduleStore) commit(ctx context.Context, classID string, next models.WeeklySchedule) error {
	if s.repo != nil {
		if err := s.repo.Save(ctx, classID, next); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
		}
	}
	if len(next) == 0 {
		delete(s.schedules, classID)
	} else {
		s.schedules[classID] = next
	}
	s.version++
	return nil
}

// WeeklySchedule returns a copy of the class schedule; unknown classes yield an empty schedule.
func (s *ScheduleStore) WeeklySchedule(classID string) models.WeeklySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedules[classID].Clone()
}

// Snapshot returns a consistent copy of every schedule along with the store version it reflects.
func (s *ScheduleStore) Snapshot() (map[string]models.WeeklySchedule, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.WeeklySchedule, len(s.schedules))
	for classID, schedule := range s.schedules {
		out[classID] = schedule.Clone()
	}
	return out, s.version
}

// Version increments on every committed mutation.
func (s *ScheduleStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ClassIDs lists classes that currently hold at least one lesson.
func (s *ScheduleStore) ClassIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.schedules))
	for id := range s.schedules {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return lessClassID(ids[i], ids[j]) })
	return ids
}

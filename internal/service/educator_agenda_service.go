package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

const agendaCachePattern = "agenda:*"

type scheduleSnapshotter interface {
	Snapshot() (map[string]models.WeeklySchedule, uint64)
	Version() uint64
}

type classDirectory interface {
	List(ctx context.Context) ([]models.Class, error)
}

type daySlotProvider interface {
	DaySlots() []models.TimeSlot
}

// EducatorAgendaService serves educator agendas projected from a consistent snapshot of all
// class schedules. Cached agendas are keyed by store version so a write never serves stale data.
type EducatorAgendaService struct {
	store   scheduleSnapshotter
	classes classDirectory
	slots   daySlotProvider
	cache   *CacheService
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewEducatorAgendaService wires agenda dependencies. classes and cache are optional.
func NewEducatorAgendaService(store scheduleSnapshotter, classes classDirectory, slots daySlotProvider, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *EducatorAgendaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EducatorAgendaService{
		store:   store,
		classes: classes,
		slots:   slots,
		cache:   cache,
		metrics: metrics,
		ttl:     ttl,
		logger:  logger,
	}
}

// Agenda returns the weekly agenda for an educator. Unknown educators get an empty agenda.
func (s *EducatorAgendaService) Agenda(ctx context.Context, educatorID string) (models.EducatorAgenda, error) {
	educatorID = strings.TrimSpace(educatorID)
	if educatorID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "educator id is required")
	}

	var cached models.EducatorAgenda
	if hit, _ := s.cache.Get(ctx, agendaCacheKey(s.store.Version(), educatorID), &cached); hit {
		return cached, nil
	}

	schedules, version, err := s.classSchedules(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	agenda := ProjectEducatorAgenda(educatorID, schedules, s.slots.DaySlots())
	s.metrics.ObserveAgendaProjection(time.Since(start))

	_ = s.cache.Set(ctx, agendaCacheKey(version, educatorID), agenda, s.ttl)
	return agenda, nil
}

// Conflicts reports educators placed in two classes at the same weekday and slot.
func (s *EducatorAgendaService) Conflicts(ctx context.Context) ([]models.EducatorConflict, error) {
	schedules, _, err := s.classSchedules(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := FindEducatorConflicts(schedules)
	if len(conflicts) > 0 {
		s.logger.Debug("educator double-booking detected", zap.Int("cells", len(conflicts)))
	}
	return conflicts, nil
}

func (s *EducatorAgendaService) classSchedules(ctx context.Context) ([]models.ClassSchedule, uint64, error) {
	snapshot, version := s.store.Snapshot()
	names := make(map[string]string)
	if s.classes != nil {
		classes, err := s.classes.List(ctx)
		if err != nil {
			return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classes")
		}
		for _, class := range classes {
			names[class.ID] = class.Name
		}
	}
	out := make([]models.ClassSchedule, 0, len(snapshot))
	for classID, schedule := range snapshot {
		out = append(out, models.ClassSchedule{ClassID: classID, ClassName: names[classID], Schedule: schedule})
	}
	return out, version, nil
}

func agendaCacheKey(version uint64, educatorID string) string {
	return fmt.Sprintf("agenda:v%d:%s", version, educatorID)
}

package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

// ClassRepository stores class groups and their display names.
type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	Upsert(ctx context.Context, class models.Class) (models.Class, error)
}

// SubjectRepository stores per-class subject grading configuration.
type SubjectRepository interface {
	ListByClass(ctx context.Context, classID string) ([]models.Subject, error)
	Upsert(ctx context.Context, classID string, subject models.Subject) (models.Subject, error)
}

// CatalogService maintains the classes and subjects that agendas and report cards read.
type CatalogService struct {
	classes   ClassRepository
	subjects  SubjectRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(classes ClassRepository, subjects SubjectRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{classes: classes, subjects: subjects, cache: cache, validator: validate, logger: logger}
}

// ListClasses returns every known class ordered by id.
func (s *CatalogService) ListClasses(ctx context.Context) ([]models.Class, error) {
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classes")
	}
	if classes == nil {
		classes = []models.Class{}
	}
	return classes, nil
}

// UpsertClass creates or renames a class. Cached agendas carry class names, so they are dropped.
func (s *CatalogService) UpsertClass(ctx context.Context, classID string, req dto.UpsertClassRequest) (*models.Class, error) {
	classID = strings.TrimSpace(classID)
	if classID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class id is required")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class, err := s.classes.Upsert(ctx, models.Class{ID: classID, Name: req.Name, Shift: req.Shift})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save class")
	}
	_ = s.cache.Invalidate(ctx, agendaCachePattern)
	s.logger.Info("class saved", zap.String("class_id", class.ID), zap.String("name", class.Name))
	return &class, nil
}

// ListSubjects returns the subjects configured for a class.
func (s *CatalogService) ListSubjects(ctx context.Context, classID string) ([]models.Subject, error) {
	subjects, err := s.subjects.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subjects")
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return subjects, nil
}

// UpsertSubject stores a subject's calculation method and assessment weights for a class.
// Every weight must be positive and assessment names must be unique ignoring case.
func (s *CatalogService) UpsertSubject(ctx context.Context, classID, name string, req dto.UpsertSubjectRequest) (*models.Subject, error) {
	classID = strings.TrimSpace(classID)
	name = strings.TrimSpace(name)
	if classID == "" || name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class id and subject are required")
	}
	assessments := make([]dto.AssessmentRequest, len(req.Assessments))
	for i, assessment := range req.Assessments {
		assessments[i] = dto.AssessmentRequest{Name: strings.TrimSpace(assessment.Name), Weight: assessment.Weight}
	}
	req.Assessments = assessments
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	if req.CalculationMethod == string(models.CalculationWeighted) && len(req.Assessments) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weighted subjects need at least one assessment")
	}

	subject := models.Subject{
		Name:              name,
		CalculationMethod: models.CalculationMethod(req.CalculationMethod),
		Assessments:       make([]models.Assessment, 0, len(req.Assessments)),
	}
	seen := make(map[string]struct{}, len(req.Assessments))
	for _, assessment := range req.Assessments {
		key := strings.ToLower(assessment.Name)
		if _, dup := seen[key]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, "assessment "+assessment.Name+" is configured twice")
		}
		seen[key] = struct{}{}
		subject.Assessments = append(subject.Assessments, models.Assessment{Name: assessment.Name, Weight: assessment.Weight})
	}

	saved, err := s.subjects.Upsert(ctx, classID, subject)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save subject")
	}
	s.logger.Info("subject saved",
		zap.String("class_id", classID),
		zap.String("subject", saved.Name),
		zap.String("method", string(saved.CalculationMethod)),
		zap.Int("assessments", len(saved.Assessments)),
	)
	return &saved, nil
}

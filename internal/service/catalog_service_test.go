package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-academic-engine/internal/dto"
	"github.com/noah-isme/sma-academic-engine/internal/models"
	"github.com/noah-isme/sma-academic-engine/internal/repository"
	appErrors "github.com/noah-isme/sma-academic-engine/pkg/errors"
)

type failingClassRepo struct{}

func (failingClassRepo) List(ctx context.Context) ([]models.Class, error) {
	return nil, errors.New("db down")
}

func (failingClassRepo) Upsert(ctx context.Context, class models.Class) (models.Class, error) {
	return models.Class{}, errors.New("db down")
}

func newCatalogFixture() (*CatalogService, *repository.MemorySubjectRepository, *memoryCacheRepo) {
	cacheRepo := newMemoryCacheRepo()
	cache := NewCacheService(cacheRepo, nil, 0, nil, true)
	subjects := repository.NewMemorySubjectRepository()
	return NewCatalogService(repository.NewMemoryClassRepository(), subjects, cache, nil, nil), subjects, cacheRepo
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "%v", err)
	return appErr.Code
}

func TestCatalogServiceUpsertClassInvalidatesAgendas(t *testing.T) {
	svc, _, cacheRepo := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.UpsertClass(ctx, "2", dto.UpsertClassRequest{Name: " 1º Ano B ", Shift: "morning"})
	require.NoError(t, err)
	assert.Equal(t, "1º Ano B", created.Name)
	assert.Contains(t, cacheRepo.invalidations, "agenda:*")

	renamed, err := svc.UpsertClass(ctx, "2", dto.UpsertClassRequest{Name: "1º Ano C"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, renamed.CreatedAt)

	_, err = svc.UpsertClass(ctx, "10", dto.UpsertClassRequest{Name: "3º Ano A"})
	require.NoError(t, err)

	classes, err := svc.ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "1º Ano C", classes[1].Name)
}

func TestCatalogServiceRejectsInvalidClass(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	_, err := svc.UpsertClass(context.Background(), "2", dto.UpsertClassRequest{Name: "  "})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))

	_, err = svc.UpsertClass(context.Background(), "", dto.UpsertClassRequest{Name: "1º Ano"})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))

	_, err = svc.UpsertClass(context.Background(), "2", dto.UpsertClassRequest{Name: "1º Ano", Shift: "night"})
	assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err))
}

func TestCatalogServiceUpsertSubject(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()

	saved, err := svc.UpsertSubject(ctx, "2", "Física", dto.UpsertSubjectRequest{
		CalculationMethod: "weighted",
		Assessments:       []dto.AssessmentRequest{{Name: " Prova 1 ", Weight: 2}, {Name: "Prova 2", Weight: 3}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, []models.Assessment{{Name: "Prova 1", Weight: 2}, {Name: "Prova 2", Weight: 3}}, saved.Assessments)

	replaced, err := svc.UpsertSubject(ctx, "2", "física", dto.UpsertSubjectRequest{CalculationMethod: "arithmetic"})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, replaced.ID)

	subjects, err := svc.ListSubjects(ctx, "2")
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, models.CalculationArithmetic, subjects[0].CalculationMethod)

	other, err := svc.ListSubjects(ctx, "3")
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestCatalogServiceRejectsInvalidWeights(t *testing.T) {
	svc, subjects, _ := newCatalogFixture()
	ctx := context.Background()

	cases := []dto.UpsertSubjectRequest{
		{CalculationMethod: "weighted", Assessments: []dto.AssessmentRequest{{Name: "a", Weight: 1}, {Name: "b", Weight: -0.5}}},
		{CalculationMethod: "weighted", Assessments: []dto.AssessmentRequest{{Name: "a", Weight: 0}}},
		{CalculationMethod: "weighted", Assessments: []dto.AssessmentRequest{{Name: "Prova", Weight: 1}, {Name: "prova", Weight: 2}}},
		{CalculationMethod: "weighted"},
		{CalculationMethod: "median"},
		{CalculationMethod: "weighted", Assessments: []dto.AssessmentRequest{{Name: "", Weight: 1}}},
	}
	for _, req := range cases {
		_, err := svc.UpsertSubject(ctx, "2", "Física", req)
		assert.Equal(t, appErrors.ErrValidation.Code, errorCode(t, err), "%+v", req)
	}

	stored, err := subjects.ListByClass(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCatalogServiceFeedsReportCards(t *testing.T) {
	svc, subjects, _ := newCatalogFixture()
	ctx := context.Background()
	_, err := svc.UpsertSubject(ctx, "2", "Física", dto.UpsertSubjectRequest{
		CalculationMethod: "weighted",
		Assessments:       []dto.AssessmentRequest{{Name: "Prova 1", Weight: 2}, {Name: "Prova 2", Weight: 3}},
	})
	require.NoError(t, err)

	records := NewAcademicRecordService(repository.NewMemoryAcademicRecordRepository(), subjects, nil, nil, nil)
	for assessment, value := range map[string]float64{"prova 1": 6, "Prova 2": 9} {
		v := value
		_, err := records.SetGrade(ctx, dto.SetGradeRequest{ClassID: "2", StudentID: "s-1", Subject: "física", Assessment: assessment, Value: &v})
		require.NoError(t, err)
	}

	card, err := records.ReportCard(ctx, "2", "s-1")
	require.NoError(t, err)
	require.Len(t, card.Subjects, 1)
	assert.True(t, card.Subjects[0].Configured)
	require.True(t, card.Subjects[0].Final.IsNumeric())
	assert.InDelta(t, 7.8, card.Subjects[0].Final.Value, 1e-9)
}

func TestCatalogServiceWrapsRepositoryFailures(t *testing.T) {
	svc := NewCatalogService(failingClassRepo{}, repository.NewMemorySubjectRepository(), nil, nil, nil)

	_, err := svc.ListClasses(context.Background())
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)

	_, err = svc.UpsertClass(context.Background(), "2", dto.UpsertClassRequest{Name: "1º Ano"})
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

package impl

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockRepo "folio/internal/mocks/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type portfolioServiceFixtures struct {
	service      *portfolioService
	profiles     *mockRepo.MockProfileRepository
	skills       *mockRepo.MockCollectionRepository[entity.SkillCategory]
	projects     *mockRepo.MockCollectionRepository[entity.Project]
	certificates *mockRepo.MockCollectionRepository[entity.Certificate]
	achievements *mockRepo.MockCollectionRepository[entity.Achievement]
	now          time.Time
}

func createTestPortfolioService(t *testing.T) *portfolioServiceFixtures {
	t.Helper()

	fx := &portfolioServiceFixtures{
		profiles:     mockRepo.NewMockProfileRepository(t),
		skills:       mockRepo.NewMockCollectionRepository[entity.SkillCategory](t),
		projects:     mockRepo.NewMockCollectionRepository[entity.Project](t),
		certificates: mockRepo.NewMockCollectionRepository[entity.Certificate](t),
		achievements: mockRepo.NewMockCollectionRepository[entity.Achievement](t),
		now:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	txManager := newTxManager(&mockRepo.RepositoryFactory{
		Profiles:     fx.profiles,
		Skills:       fx.skills,
		Projects:     fx.projects,
		Certificates: fx.certificates,
		Achievements: fx.achievements,
	})

	fx.service = NewPortfolioService(PortfolioServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	}).(*portfolioService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func TestPortfolioService_GetPortfolio(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Name: "Ada"}
	skills := []*entity.SkillCategory{{Category: "Backend"}}

	fx.profiles.EXPECT().Get(ctx).Return(profile, nil)
	fx.skills.EXPECT().List(ctx).Return(skills, nil)
	fx.certificates.EXPECT().List(ctx).Return([]*entity.Certificate{}, nil)
	fx.projects.EXPECT().List(ctx).Return([]*entity.Project{}, nil)
	fx.achievements.EXPECT().List(ctx).Return([]*entity.Achievement{}, nil)

	portfolio, err := fx.service.GetPortfolio(ctx)

	require.NoError(t, err)
	assert.Equal(t, profile, portfolio.Profile)
	assert.Equal(t, skills, portfolio.Skills)
	assert.NotNil(t, portfolio.Projects)
}

func TestPortfolioService_GetPortfolio_NoProfile(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()

	fx.profiles.EXPECT().Get(ctx).Return(nil, domainerrors.ErrProfileNotFound)

	_, err := fx.service.GetPortfolio(ctx)

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPortfolioService_GetSection(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	projects := []*entity.Project{{Title: "Folio"}}

	fx.projects.EXPECT().List(ctx).Return(projects, nil)

	section, err := fx.service.GetSection(ctx, usecase.SectionProjects)
	require.NoError(t, err)
	assert.Equal(t, projects, section)

	_, err = fx.service.GetSection(ctx, "secrets")
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestPortfolioService_UpdateProfile_MergesFields(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	profile := &entity.Profile{
		ID:      uuid.New(),
		Name:    "Ada",
		Tagline: "Engineer",
		Socials: entity.Socials{GitHub: "ada", Twitter: "ada_l"},
	}
	name := "Ada Lovelace"
	socials := entity.Socials{LinkedIn: "ada-lovelace"}

	fx.profiles.EXPECT().Get(ctx).Return(profile, nil)
	fx.profiles.EXPECT().Update(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, &entity.ProfilePatch{Name: &name, Socials: &socials})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "Engineer", updated.Tagline)
	assert.Equal(t, socials, updated.Socials)
	assert.Equal(t, fx.now, updated.UpdatedAt)
}

func TestPortfolioService_UpdateProfile_EmptyPatch(t *testing.T) {
	fx := createTestPortfolioService(t)

	_, err := fx.service.UpdateProfile(context.Background(), &entity.ProfilePatch{})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPortfolioService_UpdateProfile_Missing(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	name := "Ada"

	fx.profiles.EXPECT().Get(ctx).Return(nil, domainerrors.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, &entity.ProfilePatch{Name: &name})

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPortfolioService_EnsureProfile(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		fx := createTestPortfolioService(t)
		ctx := context.Background()

		fx.profiles.EXPECT().Get(ctx).Return(nil, domainerrors.ErrProfileNotFound)
		fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

		require.NoError(t, fx.service.EnsureProfile(ctx))
	})

	t.Run("keeps existing", func(t *testing.T) {
		fx := createTestPortfolioService(t)
		ctx := context.Background()

		fx.profiles.EXPECT().Get(ctx).Return(&entity.Profile{Name: "Ada"}, nil)

		require.NoError(t, fx.service.EnsureProfile(ctx))
		fx.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

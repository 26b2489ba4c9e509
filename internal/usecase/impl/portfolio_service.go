package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/errors"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

// PortfolioServiceParams holds dependencies for PortfolioService, injected by Fx.
type PortfolioServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

type portfolioService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(params PortfolioServiceParams) usecase.PortfolioUsecase {
	return &portfolioService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// GetPortfolio reads the profile and every collection in one transaction.
func (srv *portfolioService) GetPortfolio(ctx context.Context) (*usecase.Portfolio, error) {
	portfolio := &usecase.Portfolio{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewProfileRepository().Get(ctx)
		if err != nil {
			return err
		}
		portfolio.Profile = profile

		if portfolio.Skills, err = repoFactory.NewSkillRepository().List(ctx); err != nil {
			return errors.Wrap(err, "failed to list skills")
		}
		if portfolio.Certificates, err = repoFactory.NewCertificateRepository().List(ctx); err != nil {
			return errors.Wrap(err, "failed to list certificates")
		}
		if portfolio.Projects, err = repoFactory.NewProjectRepository().List(ctx); err != nil {
			return errors.Wrap(err, "failed to list projects")
		}
		if portfolio.Achievements, err = repoFactory.NewAchievementRepository().List(ctx); err != nil {
			return errors.Wrap(err, "failed to list achievements")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get portfolio")
	}

	return portfolio, nil
}

func (srv *portfolioService) GetSection(ctx context.Context, section string) (any, error) {
	var result any

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		switch section {
		case usecase.SectionProfile:
			result, err = repoFactory.NewProfileRepository().Get(ctx)
		case usecase.SectionSkills:
			result, err = repoFactory.NewSkillRepository().List(ctx)
		case usecase.SectionCertificates:
			result, err = repoFactory.NewCertificateRepository().List(ctx)
		case usecase.SectionProjects:
			result, err = repoFactory.NewProjectRepository().List(ctx)
		case usecase.SectionAchievements:
			result, err = repoFactory.NewAchievementRepository().List(ctx)
		default:
			return domainerrors.ErrInvalidInput.WithDetails("unknown section: " + section)
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get section %s", section)
	}

	return result, nil
}

func (srv *portfolioService) UpdateProfile(ctx context.Context, patch *entity.ProfilePatch) (*entity.Profile, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no profile fields to update")
	}

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, err := profileRepo.Get(ctx)
		if err != nil {
			return err
		}

		patch.Apply(profile)
		profile.UpdatedAt = srv.now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", "profileID", updated.ID)

	return updated, nil
}

func (srv *portfolioService) EnsureProfile(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		_, err := profileRepo.Get(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrProfileNotFound) {
			return err
		}

		if err := profileRepo.Create(ctx, &entity.Profile{UpdatedAt: srv.now()}); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		srv.log(ctx).Info("Seeded empty profile")

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure profile")
	}

	return nil
}

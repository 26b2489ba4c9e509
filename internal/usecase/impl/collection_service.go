package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/errors"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CollectionServiceParams holds dependencies shared by the collection services, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

type validatable[T any] interface {
	*T
	Validate() error
}

type applicable[T, P any] interface {
	*P
	Apply(*T)
}

// collectionSpec describes how one collection is stored and identified.
type collectionSpec[T any] struct {
	name  string
	repo  func(repository.RepositoryFactory) repository.CollectionRepository[T]
	id    func(*T) uuid.UUID
	reset func(*T)
	// uniqueKey returns the normalized value that must be unique across the collection.
	uniqueKey func(*T) string
}

type collectionService[T, P any, PT validatable[T], PP applicable[T, P]] struct {
	spec      collectionSpec[T]
	txManager repository.TransactionManager
	logger    *slog.Logger
}

func newCollectionService[T, P any, PT validatable[T], PP applicable[T, P]](
	params CollectionServiceParams,
	spec collectionSpec[T],
) *collectionService[T, P, PT, PP] {
	return &collectionService[T, P, PT, PP]{
		spec:      spec,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// NewSkillService manages skill categories. Category names are unique, ignoring case.
func NewSkillService(params CollectionServiceParams) usecase.SkillUsecase {
	return newCollectionService[entity.SkillCategory, entity.SkillCategoryPatch](params, collectionSpec[entity.SkillCategory]{
		name: entity.CollectionSkills,
		repo: func(f repository.RepositoryFactory) repository.CollectionRepository[entity.SkillCategory] {
			return f.NewSkillRepository()
		},
		id: func(s *entity.SkillCategory) uuid.UUID { return s.ID },
		reset: func(s *entity.SkillCategory) {
			*s = entity.SkillCategory{Category: s.Category, Items: s.Items}
		},
		uniqueKey: func(s *entity.SkillCategory) string {
			return strings.ToLower(strings.TrimSpace(s.Category))
		},
	})
}

func NewProjectService(params CollectionServiceParams) usecase.ProjectUsecase {
	return newCollectionService[entity.Project, entity.ProjectPatch](params, collectionSpec[entity.Project]{
		name: entity.CollectionProjects,
		repo: func(f repository.RepositoryFactory) repository.CollectionRepository[entity.Project] {
			return f.NewProjectRepository()
		},
		id: func(p *entity.Project) uuid.UUID { return p.ID },
		reset: func(p *entity.Project) {
			p.ID = uuid.Nil
			p.Position = 0
			p.CreatedAt, p.UpdatedAt = time.Time{}, time.Time{}
		},
	})
}

func NewCertificateService(params CollectionServiceParams) usecase.CertificateUsecase {
	return newCollectionService[entity.Certificate, entity.CertificatePatch](params, collectionSpec[entity.Certificate]{
		name: entity.CollectionCertificates,
		repo: func(f repository.RepositoryFactory) repository.CollectionRepository[entity.Certificate] {
			return f.NewCertificateRepository()
		},
		id: func(c *entity.Certificate) uuid.UUID { return c.ID },
		reset: func(c *entity.Certificate) {
			c.ID = uuid.Nil
			c.Position = 0
			c.CreatedAt, c.UpdatedAt = time.Time{}, time.Time{}
		},
	})
}

func NewAchievementService(params CollectionServiceParams) usecase.AchievementUsecase {
	return newCollectionService[entity.Achievement, entity.AchievementPatch](params, collectionSpec[entity.Achievement]{
		name: entity.CollectionAchievements,
		repo: func(f repository.RepositoryFactory) repository.CollectionRepository[entity.Achievement] {
			return f.NewAchievementRepository()
		},
		id: func(a *entity.Achievement) uuid.UUID { return a.ID },
		reset: func(a *entity.Achievement) {
			a.ID = uuid.Nil
			a.Position = 0
			a.CreatedAt, a.UpdatedAt = time.Time{}, time.Time{}
		},
	})
}

func (srv *collectionService[T, P, PT, PP]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *collectionService[T, P, PT, PP]) Name() string {
	return srv.spec.name
}

func (srv *collectionService[T, P, PT, PP]) List(ctx context.Context) ([]*T, error) {
	var records []*T

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		records, err = srv.spec.repo(repoFactory).List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", srv.spec.name)
	}

	return records, nil
}

func (srv *collectionService[T, P, PT, PP]) Create(ctx context.Context, record *T) ([]*T, error) {
	if record == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("record is required")
	}
	if err := PT(record).Validate(); err != nil {
		return nil, err
	}
	srv.spec.reset(record)

	var records []*T

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := srv.spec.repo(repoFactory)

		if err := srv.checkUnique(ctx, repo, record); err != nil {
			return err
		}
		if err := repo.Append(ctx, record); err != nil {
			return errors.Wrapf(err, "failed to append to %s", srv.spec.name)
		}

		var err error
		records, err = repo.List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s record", srv.spec.name)
	}

	srv.log(ctx).Info("Collection record created", "collection", srv.spec.name, "id", srv.spec.id(record))

	return records, nil
}

func (srv *collectionService[T, P, PT, PP]) Update(ctx context.Context, id uuid.UUID, patch *P) ([]*T, error) {
	if patch == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	var records []*T

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := srv.spec.repo(repoFactory)

		record, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		PP(patch).Apply(record)
		if err := PT(record).Validate(); err != nil {
			return err
		}
		if err := srv.checkUnique(ctx, repo, record); err != nil {
			return err
		}
		if err := repo.Update(ctx, record); err != nil {
			return err
		}

		records, err = repo.List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s record", srv.spec.name)
	}

	srv.log(ctx).Info("Collection record updated", "collection", srv.spec.name, "id", id)

	return records, nil
}

func (srv *collectionService[T, P, PT, PP]) Delete(ctx context.Context, id uuid.UUID) ([]*T, error) {
	var records []*T

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := srv.spec.repo(repoFactory)

		removed, err := repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			srv.log(ctx).Debug("Delete of missing record ignored", "collection", srv.spec.name, "id", id)
		}

		records, err = repo.List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s record", srv.spec.name)
	}

	return records, nil
}

// Replace validates the whole payload before touching storage, then swaps
// the collection in one transaction.
func (srv *collectionService[T, P, PT, PP]) Replace(ctx context.Context, incoming []*T) ([]*T, error) {
	seen := make(map[string]int, len(incoming))
	for i, record := range incoming {
		if record == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("item %d is empty", i))
		}
		if err := PT(record).Validate(); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		if srv.spec.uniqueKey != nil {
			key := srv.spec.uniqueKey(record)
			if first, dup := seen[key]; dup {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("items %d and %d share the same value", first, i))
			}
			seen[key] = i
		}
		srv.spec.reset(record)
	}

	var records []*T

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := srv.spec.repo(repoFactory)

		if err := repo.ReplaceAll(ctx, incoming); err != nil {
			return err
		}

		var err error
		records, err = repo.List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to replace %s", srv.spec.name)
	}

	srv.log(ctx).Info("Collection replaced", "collection", srv.spec.name, "count", len(records))

	return records, nil
}

func (srv *collectionService[T, P, PT, PP]) checkUnique(ctx context.Context, repo repository.CollectionRepository[T], record *T) error {
	if srv.spec.uniqueKey == nil {
		return nil
	}

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}

	key := srv.spec.uniqueKey(record)
	id := srv.spec.id(record)
	for _, other := range existing {
		if srv.spec.id(other) != id && srv.spec.uniqueKey(other) == key {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("%s already contains %q", srv.spec.name, key))
		}
	}

	return nil
}

package usecase

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionUsecase manages one ordered portfolio collection. Every mutation
// returns the whole collection in display order.
type CollectionUsecase[T, P any] interface {
	// Name is the collection's route and payload key.
	Name() string

	List(ctx context.Context) ([]*T, error)

	Create(ctx context.Context, record *T) ([]*T, error)

	Update(ctx context.Context, id uuid.UUID, patch *P) ([]*T, error)

	// Delete is a no-op when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) ([]*T, error)

	// Replace swaps the whole collection atomically.
	Replace(ctx context.Context, records []*T) ([]*T, error)
}

type (
	SkillUsecase       = CollectionUsecase[entity.SkillCategory, entity.SkillCategoryPatch]
	ProjectUsecase     = CollectionUsecase[entity.Project, entity.ProjectPatch]
	CertificateUsecase = CollectionUsecase[entity.Certificate, entity.CertificatePatch]
	AchievementUsecase = CollectionUsecase[entity.Achievement, entity.AchievementPatch]
)

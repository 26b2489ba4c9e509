package repository

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionRepository persists an ordered portfolio collection.
// Records are returned in display order.
type CollectionRepository[T any] interface {
	List(ctx context.Context) ([]*T, error)

	// FindByID returns domainerrors.ErrRecordNotFound when the id is absent.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Append stores the record after the current last record and fills in its id and position.
	Append(ctx context.Context, record *T) error

	// Update returns domainerrors.ErrRecordNotFound when the id is absent.
	Update(ctx context.Context, record *T) error

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// ReplaceAll swaps the whole collection for records, in order, atomically.
	ReplaceAll(ctx context.Context, records []*T) error
}

type (
	SkillRepository       = CollectionRepository[entity.SkillCategory]
	ProjectRepository     = CollectionRepository[entity.Project]
	CertificateRepository = CollectionRepository[entity.Certificate]
	AchievementRepository = CollectionRepository[entity.Achievement]
)

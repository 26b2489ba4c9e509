package repository

import (
	"context"

	"folio/internal/domain/entity"
)

// ProfileRepository persists the singleton profile.
type ProfileRepository interface {
	// Get returns domainerrors.ErrProfileNotFound when the profile has not been created.
	Get(ctx context.Context) (*entity.Profile, error)

	Create(ctx context.Context, profile *entity.Profile) error

	Update(ctx context.Context, profile *entity.Profile) error
}

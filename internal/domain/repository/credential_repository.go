// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"folio/internal/domain/entity"
)

// CredentialRepository persists admin credentials.
type CredentialRepository interface {
	// FindByUsername returns domainerrors.ErrCredentialNotFound when no credential matches.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	Create(ctx context.Context, credential *entity.Credential) error

	// Update saves the password hash, lockout counters and login stamp.
	Update(ctx context.Context, credential *entity.Credential) error
}

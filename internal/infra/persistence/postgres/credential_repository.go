package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements repository.CredentialRepository using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&credM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&credM), nil
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		return translateWriteError(err, "failed to create credential")
	}

	credential.ID = credM.ID
	credential.CreatedAt = credM.CreatedAt
	credential.UpdatedAt = credM.UpdatedAt

	return nil
}

func (repo *credentialRepository) Update(ctx context.Context, credential *entity.Credential) error {
	credM := fromCredentialDomain(credential)
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", credM.ID).
		Updates(map[string]any{
			"email":           credM.Email,
			"password_hash":   credM.PasswordHash,
			"failed_attempts": credM.FailedAttempts,
			"locked_until":    credM.LockedUntil,
			"last_login":      credM.LastLogin,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update credential")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCredentialNotFound
	}

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		FailedAttempts: data.FailedAttempts,
		LockedUntil:    data.LockedUntil,
		LastLogin:      data.LastLogin,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		FailedAttempts: data.FailedAttempts,
		LockedUntil:    data.LockedUntil,
		LastLogin:      data.LastLogin,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements repository.ProfileRepository using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Get returns the oldest profile row; there is normally exactly one.
func (repo *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return translateWriteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profileM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(profileM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	socials := data.Socials.Data()

	return &entity.Profile{
		ID:       data.ID,
		Name:     data.Name,
		Tagline:  data.Tagline,
		About:    data.About,
		Email:    data.Email,
		Phone:    data.Phone,
		Location: data.Location,
		Socials: entity.Socials{
			GitHub:    socials.GitHub,
			LinkedIn:  socials.LinkedIn,
			Twitter:   socials.Twitter,
			Portfolio: socials.Portfolio,
		},
		ProfileImage: data.ProfileImage,
		ResumeURL:    data.ResumeURL,
		CVURL:        data.CVURL,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:       data.ID,
		Name:     data.Name,
		Tagline:  data.Tagline,
		About:    data.About,
		Email:    data.Email,
		Phone:    data.Phone,
		Location: data.Location,
		Socials: datatypes.NewJSONType(model.SocialLinks{
			GitHub:    data.Socials.GitHub,
			LinkedIn:  data.Socials.LinkedIn,
			Twitter:   data.Socials.Twitter,
			Portfolio: data.Socials.Portfolio,
		}),
		ProfileImage: data.ProfileImage,
		ResumeURL:    data.ResumeURL,
		CVURL:        data.CVURL,
		UpdatedAt:    data.UpdatedAt,
	}
}

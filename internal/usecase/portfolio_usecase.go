package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// Portfolio sections addressable individually on the public API.
const (
	SectionProfile      = "profile"
	SectionSkills       = entity.CollectionSkills
	SectionCertificates = entity.CollectionCertificates
	SectionProjects     = entity.CollectionProjects
	SectionAchievements = entity.CollectionAchievements
)

// Portfolio is the full public document.
type Portfolio struct {
	Profile      *entity.Profile         `json:"profile"`
	Skills       []*entity.SkillCategory `json:"skills"`
	Certificates []*entity.Certificate   `json:"certificates"`
	Projects     []*entity.Project       `json:"projects"`
	Achievements []*entity.Achievement   `json:"achievements"`
}

// PortfolioUsecase reads the portfolio and edits the profile singleton.
type PortfolioUsecase interface {
	GetPortfolio(ctx context.Context) (*Portfolio, error)

	// GetSection returns one section of the portfolio by name.
	GetSection(ctx context.Context, section string) (any, error)

	UpdateProfile(ctx context.Context, patch *entity.ProfilePatch) (*entity.Profile, error)

	// EnsureProfile creates an empty profile when none exists.
	EnsureProfile(ctx context.Context) error
}

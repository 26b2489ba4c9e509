package repository

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
)

// TransactionManager runs the callback directly against Factory.
// Calls counts how many transactions were opened.
type TransactionManager struct {
	Factory *RepositoryFactory
	Calls   int
}

func (tm *TransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.Calls++

	return fn(tm.Factory)
}

// RepositoryFactory hands out whatever repositories the test configured.
type RepositoryFactory struct {
	Credentials  repository.CredentialRepository
	Profiles     repository.ProfileRepository
	Skills       repository.CollectionRepository[entity.SkillCategory]
	Projects     repository.CollectionRepository[entity.Project]
	Certificates repository.CollectionRepository[entity.Certificate]
	Achievements repository.CollectionRepository[entity.Achievement]
}

func (f *RepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return f.Credentials
}

func (f *RepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return f.Profiles
}

func (f *RepositoryFactory) NewSkillRepository() repository.SkillRepository {
	return f.Skills
}

func (f *RepositoryFactory) NewProjectRepository() repository.ProjectRepository {
	return f.Projects
}

func (f *RepositoryFactory) NewCertificateRepository() repository.CertificateRepository {
	return f.Certificates
}

func (f *RepositoryFactory) NewAchievementRepository() repository.AchievementRepository {
	return f.Achievements
}

package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// collectionMapper converts between a collection entity E and its table model M.
type collectionMapper[E, M any] struct {
	name       string
	id         func(*E) uuid.UUID
	toDomain   func(*M) *E
	fromDomain func(*E) *M
}

// collectionRepository implements repository.CollectionRepository for any ordered table.
type collectionRepository[E, M any] struct {
	db     *gorm.DB
	mapper collectionMapper[E, M]
}

func (repo *collectionRepository[E, M]) List(ctx context.Context) ([]*E, error) {
	var rows []M
	err := repo.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", repo.mapper.name)
	}

	records := make([]*E, 0, len(rows))
	for i := range rows {
		records = append(records, repo.mapper.toDomain(&rows[i]))
	}

	return records, nil
}

func (repo *collectionRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var row M
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s record", repo.mapper.name)
	}

	return repo.mapper.toDomain(&row), nil
}

func (repo *collectionRepository[E, M]) Append(ctx context.Context, record *E) error {
	var next int
	err := repo.db.WithContext(ctx).
		Model(new(M)).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&next).Error
	if err != nil {
		return errors.Wrapf(err, "failed to compute next %s position", repo.mapper.name)
	}

	row := repo.mapper.fromDomain(record)
	setPosition(row, next)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateWriteError(err, "failed to create "+repo.mapper.name+" record")
	}

	*record = *repo.mapper.toDomain(row)

	return nil
}

func (repo *collectionRepository[E, M]) Update(ctx context.Context, record *E) error {
	id := repo.mapper.id(record)
	row := repo.mapper.fromDomain(record)
	result := repo.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "position", "created_at").
		Updates(row)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update "+repo.mapper.name+" record")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRecordNotFound
	}

	updated, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	*record = *updated

	return nil
}

func (repo *collectionRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(M))
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to delete %s record", repo.mapper.name)
	}

	return result.RowsAffected > 0, nil
}

// ReplaceAll deletes every row and inserts records in order. Positions follow slice order.
func (repo *collectionRepository[E, M]) ReplaceAll(ctx context.Context, records []*E) error {
	rows := make([]*M, 0, len(records))
	for i, record := range records {
		row := repo.mapper.fromDomain(record)
		setPosition(row, i)
		rows = append(rows, row)
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M)).Error; err != nil {
			return errors.Wrapf(err, "failed to clear %s", repo.mapper.name)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return translateWriteError(err, "failed to insert "+repo.mapper.name+" records")
		}

		return nil
	})
	if err != nil {
		return err
	}

	for i, row := range rows {
		*records[i] = *repo.mapper.toDomain(row)
	}

	return nil
}

// setPosition writes the display position onto any collection model.
func setPosition(row any, position int) {
	switch m := row.(type) {
	case *model.SkillCategoryModel:
		m.Position = position
	case *model.ProjectModel:
		m.Position = position
	case *model.CertificateModel:
		m.Position = position
	case *model.AchievementModel:
		m.Position = position
	}
}

// NewSkillRepository is the constructor for the skill category repository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &collectionRepository[entity.SkillCategory, model.SkillCategoryModel]{
		db: db,
		mapper: collectionMapper[entity.SkillCategory, model.SkillCategoryModel]{
			name:       entity.CollectionSkills,
			id:         func(e *entity.SkillCategory) uuid.UUID { return e.ID },
			toDomain:   toSkillCategoryDomain,
			fromDomain: fromSkillCategoryDomain,
		},
	}
}

// NewProjectRepository is the constructor for the project repository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &collectionRepository[entity.Project, model.ProjectModel]{
		db: db,
		mapper: collectionMapper[entity.Project, model.ProjectModel]{
			name:       entity.CollectionProjects,
			id:         func(e *entity.Project) uuid.UUID { return e.ID },
			toDomain:   toProjectDomain,
			fromDomain: fromProjectDomain,
		},
	}
}

// NewCertificateRepository is the constructor for the certificate repository.
func NewCertificateRepository(db *gorm.DB) repository.CertificateRepository {
	return &collectionRepository[entity.Certificate, model.CertificateModel]{
		db: db,
		mapper: collectionMapper[entity.Certificate, model.CertificateModel]{
			name:       entity.CollectionCertificates,
			id:         func(e *entity.Certificate) uuid.UUID { return e.ID },
			toDomain:   toCertificateDomain,
			fromDomain: fromCertificateDomain,
		},
	}
}

// NewAchievementRepository is the constructor for the achievement repository.
func NewAchievementRepository(db *gorm.DB) repository.AchievementRepository {
	return &collectionRepository[entity.Achievement, model.AchievementModel]{
		db: db,
		mapper: collectionMapper[entity.Achievement, model.AchievementModel]{
			name:       entity.CollectionAchievements,
			id:         func(e *entity.Achievement) uuid.UUID { return e.ID },
			toDomain:   toAchievementDomain,
			fromDomain: fromAchievementDomain,
		},
	}
}

func toSkillCategoryDomain(data *model.SkillCategoryModel) *entity.SkillCategory {
	return &entity.SkillCategory{
		ID:        data.ID,
		Category:  data.Category,
		Items:     nonNilStrings(data.Items),
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSkillCategoryDomain(data *entity.SkillCategory) *model.SkillCategoryModel {
	return &model.SkillCategoryModel{
		ID:        data.ID,
		Category:  data.Category,
		Items:     datatypes.NewJSONSlice(nonNilStrings(data.Items)),
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        nonNilStrings(data.Tags),
		ImageURL:    data.ImageURL,
		GithubLink:  data.GithubLink,
		LiveLink:    data.LiveLink,
		Featured:    data.Featured,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        datatypes.NewJSONSlice(nonNilStrings(data.Tags)),
		ImageURL:    data.ImageURL,
		GithubLink:  data.GithubLink,
		LiveLink:    data.LiveLink,
		Featured:    data.Featured,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCertificateDomain(data *model.CertificateModel) *entity.Certificate {
	return &entity.Certificate{
		ID:        data.ID,
		Title:     data.Title,
		Issuer:    data.Issuer,
		Date:      data.Date,
		Link:      data.Link,
		BadgeIcon: data.BadgeIcon,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCertificateDomain(data *entity.Certificate) *model.CertificateModel {
	return &model.CertificateModel{
		ID:        data.ID,
		Title:     data.Title,
		Issuer:    data.Issuer,
		Date:      data.Date,
		Link:      data.Link,
		BadgeIcon: data.BadgeIcon,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAchievementDomain(data *model.AchievementModel) *entity.Achievement {
	return &entity.Achievement{
		ID:        data.ID,
		Date:      data.Date,
		Title:     data.Title,
		Detail:    data.Detail,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAchievementDomain(data *entity.Achievement) *model.AchievementModel {
	return &model.AchievementModel{
		ID:        data.ID,
		Date:      data.Date,
		Title:     data.Title,
		Detail:    data.Detail,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

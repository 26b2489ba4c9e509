package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillCategoryModel mirrors the 'skill_categories' table.
type SkillCategoryModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Category  string                      `gorm:"type:varchar(200);uniqueIndex;not null"`
	Items     datatypes.JSONSlice[string] `gorm:"not null"`
	Position  int                         `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SkillCategoryModel) TableName() string {
	return "skill_categories"
}

func (m *SkillCategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title       string                      `gorm:"type:varchar(300);not null"`
	Description string                      `gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"not null"`
	ImageURL    string                      `gorm:"type:text"`
	GithubLink  string                      `gorm:"type:text"`
	LiveLink    string                      `gorm:"type:text"`
	Featured    bool                        `gorm:"not null;default:false"`
	Position    int                         `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string {
	return "projects"
}

func (m *ProjectModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// CertificateModel mirrors the 'certificates' table.
type CertificateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(300);not null"`
	Issuer    string    `gorm:"type:varchar(300);not null"`
	Date      string    `gorm:"type:varchar(100)"`
	Link      string    `gorm:"type:text"`
	BadgeIcon string    `gorm:"type:text"`
	Position  int       `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// AchievementModel mirrors the 'achievements' table.
type AchievementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      string    `gorm:"type:varchar(100);not null"`
	Title     string    `gorm:"type:varchar(300);not null"`
	Detail    string    `gorm:"type:text"`
	Position  int       `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AchievementModel) TableName() string {
	return "achievements"
}

func (m *AchievementModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

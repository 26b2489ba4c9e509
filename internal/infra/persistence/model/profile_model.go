package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks is the JSON shape of the profiles.socials column.
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ProfileModel mirrors the 'profiles' table. The table holds a single row.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(200)"`
	Tagline      string    `gorm:"type:varchar(500)"`
	About        string    `gorm:"type:text"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Location     string    `gorm:"type:varchar(200)"`
	Socials      datatypes.JSONType[SocialLinks]
	ProfileImage string `gorm:"type:text"`
	ResumeURL    string `gorm:"type:text"`
	CVURL        string `gorm:"column:cv_url;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

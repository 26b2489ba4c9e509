package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(255)"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	FailedAttempts int       `gorm:"not null;default:0"`
	LockedUntil    *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

func (m *CredentialModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

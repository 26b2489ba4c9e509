package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorEventModel mirrors the 'visitor_events' table.
type VisitorEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VisitorID string    `gorm:"type:varchar(500);not null;index"`
	Type      string    `gorm:"type:varchar(20);not null;index:idx_visitor_events_type_created,priority:1"`
	Page      string    `gorm:"type:varchar(500);not null"`
	Item      string    `gorm:"type:varchar(500)"`
	Referrer  string    `gorm:"type:varchar(500)"`
	Device    string    `gorm:"type:varchar(20);not null"`
	UserAgent string    `gorm:"type:varchar(500)"`
	IP        string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"not null;index;index:idx_visitor_events_type_created,priority:2"`
}

func (VisitorEventModel) TableName() string {
	return "visitor_events"
}

func (m *VisitorEventModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// RankedCountRow is the scan target for grouped counts.
type RankedCountRow struct {
	Label string
	Total int64
}

package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// EventType is the kind of visitor interaction.
type EventType string

const (
	EventPageView EventType = "page_view"
	EventClick    EventType = "click"
	EventDownload EventType = "download"
)

// EventTypes lists every valid event type in display order.
var EventTypes = []EventType{EventPageView, EventClick, EventDownload}

func (t EventType) IsValid() bool {
	switch t {
	case EventPageView, EventClick, EventDownload:
		return true
	default:
		return false
	}
}

// Device is the visitor's coarse device class.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
)

// ParseDevice maps anything unknown to desktop.
func ParseDevice(s string) Device {
	switch Device(strings.ToLower(strings.TrimSpace(s))) {
	case DeviceMobile:
		return DeviceMobile
	case DeviceTablet:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

// VisitorEvent is an immutable record of a public site interaction.
type VisitorEvent struct {
	ID        uuid.UUID `json:"id"`
	VisitorID string    `json:"visitorId"`
	Type      EventType `json:"type"`
	Page      string    `json:"page"`
	Item      string    `json:"item,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	Device    Device    `json:"device"`
	UserAgent string    `json:"userAgent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnonymizedVisitorID returns the first n runes of the visitor id.
func (e *VisitorEvent) AnonymizedVisitorID(n int) string {
	return TruncateText(e.VisitorID, n)
}

// TruncateText cuts s to at most limit runes and trims surrounding whitespace.
func TruncateText(s string, limit int) string {
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		runes := []rune(s)
		s = string(runes[:limit])
	}

	return strings.TrimSpace(s)
}

// RankedCount is one row of a frequency ranking.
type RankedCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// AnalyticsSummary aggregates visitor events over a time window.
type AnalyticsSummary struct {
	Since          time.Time           `json:"since"`
	Until          time.Time           `json:"until"`
	TotalEvents    int64               `json:"totalEvents"`
	UniqueVisitors int64               `json:"uniqueVisitors"`
	ByType         map[EventType]int64 `json:"byType"`
	TopPages       []RankedCount       `json:"topPages"`
	TopClicks      []RankedCount       `json:"topClicks"`
	Downloads      []RankedCount       `json:"downloads"`
	Devices        []RankedCount       `json:"devices"`
}

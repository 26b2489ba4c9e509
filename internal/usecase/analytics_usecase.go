package usecase

import (
	"context"
	"time"

	"folio/internal/domain/entity"
)

// TrackInput is a raw visitor event as reported by the public site.
type TrackInput struct {
	VisitorID string `json:"visitorId"`
	Type      string `json:"type"`
	Page      string `json:"page"`
	Item      string `json:"item"`
	Referrer  string `json:"referrer"`
	Device    string `json:"device"`
	UserAgent string `json:"-"`
	IP        string `json:"-"`
}

// SummaryOutput is an analytics summary plus cache provenance.
type SummaryOutput struct {
	*entity.AnalyticsSummary
	Days   int  `json:"days"`
	Cached bool `json:"cached"`
}

// EventsQuery pages through recent events. Page is 1-based.
type EventsQuery struct {
	Limit int
	Page  int
	Type  string
}

// Pagination describes a page of results.
type Pagination struct {
	Current int   `json:"current"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
}

// EventsOutput is one page of anonymized events.
type EventsOutput struct {
	Events     []*entity.VisitorEvent `json:"events"`
	Pagination Pagination             `json:"pagination"`
}

// VisitorHistory is every retained event of one visitor with derived stats.
type VisitorHistory struct {
	VisitorID   string                     `json:"visitorId"`
	FirstSeen   time.Time                  `json:"firstSeen"`
	LastSeen    time.Time                  `json:"lastSeen"`
	TotalEvents int                        `json:"totalEvents"`
	ByType      map[entity.EventType]int64 `json:"byType"`
	Pages       int                        `json:"pages"`
	Device      entity.Device              `json:"device"`
	Events      []*entity.VisitorEvent     `json:"events"`
}

// AnalyticsUsecase records visitor events and answers dashboard queries.
type AnalyticsUsecase interface {
	Track(ctx context.Context, input *TrackInput) (*entity.VisitorEvent, error)

	// Summary aggregates the last days days. Zero means the configured default.
	Summary(ctx context.Context, days int) (*SummaryOutput, error)

	RecentEvents(ctx context.Context, query *EventsQuery) (*EventsOutput, error)

	VisitorHistory(ctx context.Context, visitorID string) (*VisitorHistory, error)

	// PruneExpired deletes events older than the retention window.
	PruneExpired(ctx context.Context) (int64, error)
}

package repository

import (
	"context"
	"time"

	"folio/internal/domain/entity"
)

// EventQuery filters and pages recent visitor events.
type EventQuery struct {
	Type   entity.EventType
	Limit  int
	Offset int
}

// VisitorEventRepository persists and aggregates visitor events.
type VisitorEventRepository interface {
	Create(ctx context.Context, event *entity.VisitorEvent) error

	// Summarize aggregates events created at or after since. Rankings hold at most topN rows.
	Summarize(ctx context.Context, since time.Time, topN int) (*entity.AnalyticsSummary, error)

	// ListRecent returns newest events first together with the total matching count.
	ListRecent(ctx context.Context, query EventQuery) ([]*entity.VisitorEvent, int64, error)

	// ListByVisitor returns the visitor's events oldest first.
	ListByVisitor(ctx context.Context, visitorID string) ([]*entity.VisitorEvent, error)

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

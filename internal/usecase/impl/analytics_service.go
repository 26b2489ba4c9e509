package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/constants"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/errors"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
	maxSummaryDays     = 365
	anonymizedIDLength = 8
)

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	Events      repository.VisitorEventRepository
	Cache       service.Cache
	Broadcaster service.Broadcaster
	Config      *config.Config
	Logger      *slog.Logger
}

type analyticsService struct {
	events      repository.VisitorEventRepository
	cache       service.Cache
	broadcaster service.Broadcaster
	cfg         config.AnalyticsConfig
	logger      *slog.Logger
	now         func() time.Time
}

// visitorEventPayload is the live feed view of a tracked event.
type visitorEventPayload struct {
	Type      entity.EventType `json:"type"`
	Page      string           `json:"page"`
	Item      string           `json:"item,omitempty"`
	Device    entity.Device    `json:"device"`
	Timestamp time.Time        `json:"timestamp"`
	VisitorID string           `json:"visitorId"`
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	var cfg config.AnalyticsConfig
	if params.Config.Analytics != nil {
		cfg = *params.Config.Analytics
	}

	return &analyticsService{
		events:      params.Events,
		cache:       params.Cache,
		broadcaster: params.Broadcaster,
		cfg:         cfg,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Track records a visitor event and pushes it to connected admin sessions.
func (srv *analyticsService) Track(ctx context.Context, input *usecase.TrackInput) (*entity.VisitorEvent, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: visitorId, type, page")
	}

	eventType := entity.EventType(input.Type)
	if eventType != "" && !eventType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid event type: " + input.Type)
	}

	limit := srv.cfg.MaxTextLength
	event := &entity.VisitorEvent{
		VisitorID: entity.TruncateText(input.VisitorID, limit),
		Type:      eventType,
		Page:      entity.TruncateText(input.Page, limit),
		Item:      entity.TruncateText(input.Item, limit),
		Referrer:  entity.TruncateText(input.Referrer, limit),
		Device:    entity.ParseDevice(input.Device),
		UserAgent: entity.TruncateText(input.UserAgent, limit),
		IP:        input.IP,
		CreatedAt: srv.now().UTC(),
	}

	if event.VisitorID == "" || event.Type == "" || event.Page == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: visitorId, type, page")
	}

	if err := srv.events.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to record visitor event")
	}

	srv.broadcaster.Broadcast(ctx, &service.LiveMessage{
		Type: service.LiveMessageVisitorEvent,
		Data: visitorEventPayload{
			Type:      event.Type,
			Page:      event.Page,
			Item:      event.Item,
			Device:    event.Device,
			Timestamp: event.CreatedAt,
			VisitorID: event.AnonymizedVisitorID(anonymizedIDLength),
		},
	})

	srv.log(ctx).Debug("Visitor event tracked", "type", event.Type, "page", event.Page)

	return event, nil
}

// Summary aggregates the window, serving repeated requests from the cache.
// Cache failures degrade to a direct query.
func (srv *analyticsService) Summary(ctx context.Context, days int) (*usecase.SummaryOutput, error) {
	if days == 0 {
		days = srv.cfg.SummaryWindowDays
	}
	if days < 1 || days > maxSummaryDays {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("days must be between 1 and %d", maxSummaryDays))
	}

	key := fmt.Sprintf("%s%dd", constants.AnalyticsSummaryCacheKeyPrefix, days)

	var cached entity.AnalyticsSummary
	hit, err := srv.cache.Get(ctx, key, &cached)
	if err != nil {
		srv.log(ctx).Warn("Summary cache read failed", "error", err, "key", key)
	}
	if hit && err == nil {
		return &usecase.SummaryOutput{AnalyticsSummary: &cached, Days: days, Cached: true}, nil
	}

	until := srv.now().UTC()
	since := until.Add(-time.Duration(days) * 24 * time.Hour)

	summary, err := srv.events.Summarize(ctx, since, srv.cfg.TopN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize visitor events")
	}
	summary.Since = since
	summary.Until = until

	if err := srv.cache.Set(ctx, key, summary, srv.cfg.SummaryCacheTTL); err != nil {
		srv.log(ctx).Warn("Summary cache write failed", "error", err, "key", key)
	}

	return &usecase.SummaryOutput{AnalyticsSummary: summary, Days: days}, nil
}

func (srv *analyticsService) RecentEvents(ctx context.Context, query *usecase.EventsQuery) (*usecase.EventsOutput, error) {
	limit, page := defaultEventsLimit, 1
	var eventType entity.EventType
	if query != nil {
		if query.Limit > 0 {
			limit = min(query.Limit, maxEventsLimit)
		}
		if query.Page > 1 {
			page = query.Page
		}
		eventType = entity.EventType(query.Type)
	}
	if eventType != "" && !eventType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid event type: " + string(eventType))
	}

	events, total, err := srv.events.ListRecent(ctx, repository.EventQuery{
		Type:   eventType,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitor events")
	}

	anonymized := make([]*entity.VisitorEvent, 0, len(events))
	for _, event := range events {
		view := redact(event)
		view.VisitorID = event.AnonymizedVisitorID(anonymizedIDLength) + "..."
		anonymized = append(anonymized, view)
	}

	return &usecase.EventsOutput{
		Events: anonymized,
		Pagination: usecase.Pagination{
			Current: page,
			Limit:   limit,
			Total:   total,
			Pages:   (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (srv *analyticsService) VisitorHistory(ctx context.Context, visitorID string) (*usecase.VisitorHistory, error) {
	if visitorID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("visitorId is required")
	}

	events, err := srv.events.ListByVisitor(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitor events")
	}
	if len(events) == 0 {
		return nil, domainerrors.ErrVisitorNotFound
	}

	history := &usecase.VisitorHistory{
		VisitorID:   visitorID,
		FirstSeen:   events[0].CreatedAt,
		LastSeen:    events[len(events)-1].CreatedAt,
		TotalEvents: len(events),
		ByType:      make(map[entity.EventType]int64, len(entity.EventTypes)),
		Device:      events[len(events)-1].Device,
		Events:      make([]*entity.VisitorEvent, 0, len(events)),
	}
	for _, eventType := range entity.EventTypes {
		history.ByType[eventType] = 0
	}

	pages := make(map[string]struct{})
	for _, event := range events {
		history.ByType[event.Type]++
		if event.Page != "" {
			pages[event.Page] = struct{}{}
		}
		history.Events = append(history.Events, redact(event))
	}
	history.Pages = len(pages)

	return history, nil
}

// PruneExpired deletes events older than the retention window.
func (srv *analyticsService) PruneExpired(ctx context.Context) (int64, error) {
	if srv.cfg.Retention <= 0 {
		return 0, nil
	}

	cutoff := srv.now().UTC().Add(-srv.cfg.Retention)

	deleted, err := srv.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune visitor events")
	}
	if deleted > 0 {
		srv.log(ctx).Info("Pruned expired visitor events", "deleted", deleted, "cutoff", cutoff)
	}

	return deleted, nil
}

// redact copies the event without the client address and user agent.
func redact(event *entity.VisitorEvent) *entity.VisitorEvent {
	view := *event
	view.IP = ""
	view.UserAgent = ""

	return &view
}

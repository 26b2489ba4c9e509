package impl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service     *analyticsService
	events      *mockRepo.MockVisitorEventRepository
	cache       *mockSvc.MockCache
	broadcaster *mockSvc.MockBroadcaster
	now         time.Time
}

func createTestAnalyticsService(t *testing.T) *analyticsServiceFixtures {
	t.Helper()

	fx := &analyticsServiceFixtures{
		events:      mockRepo.NewMockVisitorEventRepository(t),
		cache:       mockSvc.NewMockCache(t),
		broadcaster: mockSvc.NewMockBroadcaster(t),
		now:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	fx.service = NewAnalyticsService(AnalyticsServiceParams{
		Events:      fx.events,
		Cache:       fx.cache,
		Broadcaster: fx.broadcaster,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*analyticsService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func TestAnalyticsService_Track_RecordsAndBroadcasts(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.VisitorEvent) bool {
		return e.VisitorID == "visitor-1234567890" && e.Type == entity.EventClick &&
			e.Device == entity.DeviceDesktop && e.IP == "203.0.113.9" && e.CreatedAt.Equal(fx.now)
	})).Return(nil)
	fx.broadcaster.EXPECT().Broadcast(ctx, mock.MatchedBy(func(msg *service.LiveMessage) bool {
		payload, ok := msg.Data.(visitorEventPayload)

		return ok && msg.Type == service.LiveMessageVisitorEvent &&
			payload.VisitorID == "visitor-" && payload.Item == "github" && payload.Timestamp.Equal(fx.now)
	})).Return()

	event, err := fx.service.Track(ctx, &usecase.TrackInput{
		VisitorID: "visitor-1234567890",
		Type:      "click",
		Page:      "/",
		Item:      "  github  ",
		Device:    "smart-fridge",
		IP:        "203.0.113.9",
	})

	require.NoError(t, err)
	assert.Equal(t, "github", event.Item)
}

func TestAnalyticsService_Track_TruncatesText(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.broadcaster.EXPECT().Broadcast(ctx, mock.Anything).Return()

	event, err := fx.service.Track(ctx, &usecase.TrackInput{
		VisitorID: "v1",
		Type:      "page_view",
		Page:      "/" + strings.Repeat("é", 600),
		Device:    "Mobile",
	})

	require.NoError(t, err)
	assert.Equal(t, 500, len([]rune(event.Page)))
	assert.Equal(t, entity.DeviceMobile, event.Device)
}

func TestAnalyticsService_Track_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.TrackInput
	}{
		{name: "missing visitor", input: &usecase.TrackInput{Type: "click", Page: "/"}},
		{name: "missing page", input: &usecase.TrackInput{VisitorID: "v", Type: "click", Page: "   "}},
		{name: "unknown type", input: &usecase.TrackInput{VisitorID: "v", Type: "scroll", Page: "/"}},
		{name: "padded type", input: &usecase.TrackInput{VisitorID: "v", Type: " click ", Page: "/"}},
		{name: "nil input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t)

			_, err := fx.service.Track(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAnalyticsService_Track_StoreFailureSkipsBroadcast(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.Track(ctx, &usecase.TrackInput{VisitorID: "v", Type: "download", Page: "/"})

	require.Error(t, err)
	fx.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestAnalyticsService_Summary_CachesResult(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	summary := &entity.AnalyticsSummary{TotalEvents: 42}
	since := fx.now.Add(-7 * 24 * time.Hour)

	fx.cache.EXPECT().Get(ctx, "analytics:summary:7d", mock.Anything).Return(false, nil).Once()
	fx.events.EXPECT().Summarize(ctx, since, 5).Return(summary, nil).Once()
	fx.cache.EXPECT().Set(ctx, "analytics:summary:7d", summary, 5*time.Minute).Return(nil).Once()

	first, err := fx.service.Summary(ctx, 7)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 7, first.Days)
	assert.Equal(t, since, first.Since)
	assert.Equal(t, fx.now, first.Until)

	fx.cache.EXPECT().Get(ctx, "analytics:summary:7d", mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			*dest.(*entity.AnalyticsSummary) = *summary
		}).
		Return(true, nil).Once()

	second, err := fx.service.Summary(ctx, 7)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, int64(42), second.TotalEvents)
}

func TestAnalyticsService_Summary_DefaultWindow(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "analytics:summary:30d", mock.Anything).Return(false, nil)
	fx.events.EXPECT().Summarize(ctx, fx.now.Add(-30*24*time.Hour), 5).Return(&entity.AnalyticsSummary{}, nil)
	fx.cache.EXPECT().Set(ctx, "analytics:summary:30d", mock.Anything, 5*time.Minute).Return(errors.New("redis down"))

	out, err := fx.service.Summary(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, 30, out.Days)
}

func TestAnalyticsService_Summary_CacheReadFailureFallsThrough(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "analytics:summary:1d", mock.Anything).Return(false, errors.New("redis down"))
	fx.events.EXPECT().Summarize(ctx, mock.Anything, 5).Return(&entity.AnalyticsSummary{TotalEvents: 1}, nil)
	fx.cache.EXPECT().Set(ctx, "analytics:summary:1d", mock.Anything, 5*time.Minute).Return(nil)

	out, err := fx.service.Summary(ctx, 1)

	require.NoError(t, err)
	assert.False(t, out.Cached)
}

func TestAnalyticsService_Summary_InvalidWindow(t *testing.T) {
	fx := createTestAnalyticsService(t)

	for _, days := range []int{-1, 366} {
		_, err := fx.service.Summary(context.Background(), days)
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestAnalyticsService_RecentEvents_AnonymizesAndPages(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	stored := []*entity.VisitorEvent{{
		VisitorID: "abcdefghijkl",
		Type:      entity.EventPageView,
		Page:      "/",
		IP:        "198.51.100.4",
		UserAgent: "Mozilla/5.0",
	}}

	fx.events.EXPECT().ListRecent(ctx, repository.EventQuery{Type: entity.EventPageView, Limit: 20, Offset: 40}).
		Return(stored, int64(101), nil)

	out, err := fx.service.RecentEvents(ctx, &usecase.EventsQuery{Limit: 20, Page: 3, Type: "page_view"})

	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "abcdefgh...", out.Events[0].VisitorID)
	assert.Empty(t, out.Events[0].IP)
	assert.Empty(t, out.Events[0].UserAgent)
	assert.Equal(t, "abcdefghijkl", stored[0].VisitorID)
	assert.Equal(t, usecase.Pagination{Current: 3, Limit: 20, Total: 101, Pages: 6}, out.Pagination)
}

func TestAnalyticsService_RecentEvents_Defaults(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().ListRecent(ctx, repository.EventQuery{Limit: 50, Offset: 0}).Return([]*entity.VisitorEvent{}, int64(0), nil)
	fx.events.EXPECT().ListRecent(ctx, repository.EventQuery{Limit: 500, Offset: 0}).Return([]*entity.VisitorEvent{}, int64(0), nil)

	out, err := fx.service.RecentEvents(ctx, &usecase.EventsQuery{Page: -2})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Current)
	assert.Equal(t, int64(0), out.Pagination.Pages)

	out, err = fx.service.RecentEvents(ctx, &usecase.EventsQuery{Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, 500, out.Pagination.Limit)

	_, err = fx.service.RecentEvents(ctx, &usecase.EventsQuery{Type: "hover"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAnalyticsService_VisitorHistory(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	first := fx.now.Add(-2 * time.Hour)
	events := []*entity.VisitorEvent{
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/", Device: entity.DeviceDesktop, IP: "1.2.3.4", CreatedAt: first},
		{VisitorID: "v1", Type: entity.EventClick, Page: "/", Item: "github", Device: entity.DeviceDesktop, CreatedAt: first.Add(time.Minute)},
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/projects", Device: entity.DeviceMobile, CreatedAt: fx.now},
	}

	fx.events.EXPECT().ListByVisitor(ctx, "v1").Return(events, nil)

	history, err := fx.service.VisitorHistory(ctx, "v1")

	require.NoError(t, err)
	assert.Equal(t, first, history.FirstSeen)
	assert.Equal(t, fx.now, history.LastSeen)
	assert.Equal(t, 3, history.TotalEvents)
	assert.Equal(t, int64(2), history.ByType[entity.EventPageView])
	assert.Equal(t, int64(1), history.ByType[entity.EventClick])
	assert.Equal(t, int64(0), history.ByType[entity.EventDownload])
	assert.Equal(t, 2, history.Pages)
	assert.Equal(t, entity.DeviceMobile, history.Device)
	assert.Empty(t, history.Events[0].IP)
}

func TestAnalyticsService_VisitorHistory_Unknown(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().ListByVisitor(ctx, "ghost").Return([]*entity.VisitorEvent{}, nil)

	_, err := fx.service.VisitorHistory(ctx, "ghost")

	require.ErrorIs(t, err, domainerrors.ErrVisitorNotFound)
}

func TestAnalyticsService_PruneExpired(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.events.EXPECT().DeleteOlderThan(ctx, fx.now.Add(-90*24*time.Hour)).Return(int64(12), nil)

	deleted, err := fx.service.PruneExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}

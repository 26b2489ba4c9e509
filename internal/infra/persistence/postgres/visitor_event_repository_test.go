package postgres

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvents(t *testing.T, repo repository.VisitorEventRepository, base time.Time, events []entity.VisitorEvent) {
	t.Helper()

	for i := range events {
		event := events[i]
		event.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(context.Background(), &event))
	}
}

func TestVisitorEventRepository_Summarize(t *testing.T) {
	repo := NewVisitorEventRepository(newTestDB(t))
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	seedEvents(t, repo, base, []entity.VisitorEvent{
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/about", Device: entity.DeviceDesktop},
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/", Device: entity.DeviceDesktop},
		{VisitorID: "v2", Type: entity.EventPageView, Page: "/", Device: entity.DeviceMobile},
		{VisitorID: "v2", Type: entity.EventPageView, Page: "/about", Device: entity.DeviceMobile},
		{VisitorID: "v3", Type: entity.EventClick, Page: "/", Item: "github", Device: entity.DeviceTablet},
		{VisitorID: "v3", Type: entity.EventDownload, Page: "/", Item: "resume", Device: entity.DeviceTablet},
	})

	summary, err := repo.Summarize(context.Background(), base, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(6), summary.TotalEvents)
	assert.Equal(t, int64(3), summary.UniqueVisitors)
	assert.Equal(t, int64(4), summary.ByType[entity.EventPageView])
	assert.Equal(t, int64(1), summary.ByType[entity.EventClick])
	assert.Equal(t, int64(1), summary.ByType[entity.EventDownload])

	// Both pages tie at two views; /about was seen first.
	assert.Equal(t, []entity.RankedCount{{Label: "/about", Count: 2}, {Label: "/", Count: 2}}, summary.TopPages)
	assert.Equal(t, []entity.RankedCount{{Label: "github", Count: 1}}, summary.TopClicks)
	assert.Equal(t, []entity.RankedCount{{Label: "resume", Count: 1}}, summary.Downloads)
	assert.Len(t, summary.Devices, 3)
}

func TestVisitorEventRepository_SummarizeWindow(t *testing.T) {
	repo := NewVisitorEventRepository(newTestDB(t))
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	seedEvents(t, repo, base, []entity.VisitorEvent{
		{VisitorID: "old", Type: entity.EventPageView, Page: "/", Device: entity.DeviceDesktop},
		{VisitorID: "new", Type: entity.EventPageView, Page: "/", Device: entity.DeviceDesktop},
	})

	summary, err := repo.Summarize(context.Background(), base.Add(time.Second), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalEvents)
	assert.Equal(t, int64(1), summary.UniqueVisitors)
}

func TestVisitorEventRepository_ListRecent(t *testing.T) {
	repo := NewVisitorEventRepository(newTestDB(t))
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	seedEvents(t, repo, base, []entity.VisitorEvent{
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/a", Device: entity.DeviceDesktop},
		{VisitorID: "v1", Type: entity.EventClick, Page: "/a", Item: "x", Device: entity.DeviceDesktop},
		{VisitorID: "v2", Type: entity.EventPageView, Page: "/b", Device: entity.DeviceDesktop},
	})

	events, total, err := repo.ListRecent(context.Background(), repository.EventQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, events, 2)
	assert.Equal(t, "/b", events[0].Page)

	events, total, err = repo.ListRecent(context.Background(), repository.EventQuery{Type: entity.EventPageView, Limit: 10, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 1)
	assert.Equal(t, "/a", events[0].Page)
}

func TestVisitorEventRepository_ListByVisitorAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitorEventRepository(newTestDB(t))
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	seedEvents(t, repo, base, []entity.VisitorEvent{
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/first", Device: entity.DeviceDesktop},
		{VisitorID: "v1", Type: entity.EventPageView, Page: "/second", Device: entity.DeviceDesktop},
	})

	history, err := repo.ListByVisitor(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "/first", history[0].Page)

	deleted, err := repo.DeleteOlderThan(ctx, base.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	history, err = repo.ListByVisitor(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "/second", history[0].Page)
}

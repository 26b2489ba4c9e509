package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"folio/config"
	"folio/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type cachedSummary struct {
	Total int64            `json:"total"`
	Pages map[string]int64 `json:"pages"`
}

func exerciseCache(t *testing.T, c service.Cache, expire func(time.Duration)) {
	t.Helper()
	ctx := context.Background()

	var got cachedSummary
	found, err := c.Get(ctx, "analytics:summary:30d", &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := cachedSummary{Total: 7, Pages: map[string]int64{"/": 5}}
	require.NoError(t, c.Set(ctx, "analytics:summary:30d", want, time.Minute))

	found, err = c.Get(ctx, "analytics:summary:30d", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	expire(2 * time.Minute)
	found, err = c.Get(ctx, "analytics:summary:30d", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", want, time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseCache(t, NewRedisCache(client), mr.FastForward)
}

func TestMemoryCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newMemoryCache(func() time.Time { return now })

	exerciseCache(t, c, func(d time.Duration) { now = now.Add(d) })
}

func TestNewCache_SelectsBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	memory := NewCache(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	assert.IsType(t, &memoryCache{}, memory)

	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	remote := NewCache(Params{Lc: lc, Config: &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}}, Logger: logger})
	assert.IsType(t, &redisCache{}, remote)

	lc.RequireStart()
	require.NoError(t, remote.Set(context.Background(), "k", 1, time.Minute))
	assert.True(t, mr.Exists("k"))
	lc.RequireStop()
}

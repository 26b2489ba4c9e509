package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = 50 * time.Millisecond

	t.Run("slow query warns", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), cfg)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), cfg)

		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), cfg)

		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failure uses the request logger", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), cfg)
		ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With("request_id", "req-1"))

		l.Trace(ctx, time.Now(), sqlAndRows, errors.New("connection reset"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "GORM query failed")
		assert.Contains(t, scoped.String(), "request_id=req-1")
		assert.Contains(t, scoped.String(), "connection reset")
	})
}

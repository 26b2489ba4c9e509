package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	failures int
	calls    int
}

func (p *fakePinger) PingContext(context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}

	return nil
}

func TestWaitForDatabase(t *testing.T) {
	t.Run("retries until ready", func(t *testing.T) {
		var buf bytes.Buffer
		db := &fakePinger{failures: 2}

		err := waitForDatabase(context.Background(), db, 5, time.Millisecond, newBufferLogger(&buf))

		require.NoError(t, err)
		assert.Equal(t, 3, db.calls)
		assert.Contains(t, buf.String(), "PostgreSQL not ready, retrying")
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		var buf bytes.Buffer
		db := &fakePinger{failures: 10}

		err := waitForDatabase(context.Background(), db, 3, time.Millisecond, newBufferLogger(&buf))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 attempts")
		assert.Equal(t, 3, db.calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		var buf bytes.Buffer
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		db := &fakePinger{failures: 10}

		err := waitForDatabase(ctx, db, 5, time.Hour, newBufferLogger(&buf))

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, db.calls)
	})
}

func TestPoolMonitor_Report(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits is quiet", func(t *testing.T) {
		var buf bytes.Buffer
		m := &poolMonitor{logger: newBufferLogger(&buf), warnWait: 50 * time.Millisecond}

		m.report(context.Background(), prev, prev)

		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := &poolMonitor{logger: newBufferLogger(&buf), warnWait: 50 * time.Millisecond}

		m.report(context.Background(), prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "waitCountDelta=2")
	})

	t.Run("long waits warn", func(t *testing.T) {
		var buf bytes.Buffer
		m := &poolMonitor{logger: newBufferLogger(&buf), warnWait: 50 * time.Millisecond}

		m.report(context.Background(), prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "Postgres pool wait detected")
	})
}

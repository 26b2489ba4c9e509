package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the portfolio database. On start it waits for Postgres to accept
// connections, applies the schema when migrations.autoMigrate is set and
// starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes (bulk replace, login bookkeeping) go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	dbCfg := params.Config.Database
	monitor := &poolMonitor{
		logger:   params.Logger,
		stats:    sqlDB.Stats,
		interval: dbCfg.PoolMonitorInterval,
		warnWait: dbCfg.PoolWaitWarn,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := waitForDatabase(startCtx, sqlDB, dbCfg.ConnectAttempts, dbCfg.ConnectBackoff, params.Logger); err != nil {
				return err
			}

			if params.Config.Migrations.AutoMigrate {
				if err := Migrate(startCtx, sqlDB, params.Logger); err != nil {
					return err
				}
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// waitForDatabase pings up to attempts times, doubling the pause between tries.
func waitForDatabase(ctx context.Context, db pinger, attempts int, backoff time.Duration, logger *slog.Logger) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		logger.Warn("PostgreSQL not ready, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "gave up waiting for PostgreSQL")
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return errors.Wrapf(err, "failed to ping PostgreSQL after %d attempts", attempts)
}

// poolMonitor logs when requests had to wait for a pooled connection.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	warnWait time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits between two samples. Waits totalling warnWait or
// more in one interval are warnings.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waitDurationDelta >= m.warnWait {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}

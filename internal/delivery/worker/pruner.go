// Package worker runs background jobs bound to the application lifecycle.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"folio/config"
	"folio/internal/delivery"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

// Pruner deletes visitor events that fell out of the retention window.
type Pruner struct {
	analyticsUC usecase.AnalyticsUsecase
	interval    time.Duration
	logger      *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// PrunerParams holds dependencies for the retention pruner, injected by Fx.
type PrunerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	AnalyticsUC usecase.AnalyticsUsecase
}

// NewPruner creates the pruner delivery. It runs once on start and then every
// analytics.pruneInterval until the application stops.
func NewPruner(params PrunerParams) (delivery.Delivery, error) {
	interval := time.Hour
	if params.Cfg.Analytics != nil && params.Cfg.Analytics.PruneInterval > 0 {
		interval = params.Cfg.Analytics.PruneInterval
	}

	p := newPruner(params.AnalyticsUC, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p, nil
}

func newPruner(analyticsUC usecase.AnalyticsUsecase, interval time.Duration, logger *slog.Logger) *Pruner {
	return &Pruner{
		analyticsUC: analyticsUC,
		interval:    interval,
		logger:      logger.With(slog.String("job", "retention-pruner")),
	}
}

// Serve blocks until the pruner is stopped or ctx is cancelled.
func (p *Pruner) Serve(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped || p.cancel != nil {
		p.mu.Unlock()

		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	defer close(done)

	p.logger.Info("Starting retention pruner", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Pruner) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	ctx = deliverycontext.WithLogger(ctx, p.logger)

	deleted, err := p.analyticsUC.PruneExpired(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		p.logger.Error("Retention prune failed", slog.Any("error", err))

		return
	}

	p.logger.Debug("Retention prune finished", slog.Int64("deleted", deleted))
}

// stop cancels the loop and waits for an in-flight prune to finish.
func (p *Pruner) stop(ctx context.Context) error {
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}

	p.logger.Info("Shutting down retention pruner")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

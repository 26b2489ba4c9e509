package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "folio/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPruner_RunsOnStartAndOnTick(t *testing.T) {
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
	calls := make(chan struct{}, 16)
	analyticsUC.EXPECT().PruneExpired(mock.Anything).
		Run(func(context.Context) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(int64(2), nil)

	p := newPruner(analyticsUC, 10*time.Millisecond, discardLogger())

	served := make(chan error, 1)
	go func() { served <- p.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("pruner did not run")
		}
	}

	require.NoError(t, p.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("pruner did not stop")
	}
}

func TestPruner_KeepsRunningAfterFailure(t *testing.T) {
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
	calls := make(chan struct{}, 16)
	analyticsUC.EXPECT().PruneExpired(mock.Anything).
		Run(func(context.Context) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(int64(0), errors.New("database unavailable"))

	p := newPruner(analyticsUC, 10*time.Millisecond, discardLogger())
	go func() { _ = p.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("pruner stopped after a failure")
		}
	}

	require.NoError(t, p.stop(context.Background()))
}

func TestPruner_StopBeforeServe(t *testing.T) {
	p := newPruner(mockUsecase.NewMockAnalyticsUsecase(t), time.Hour, discardLogger())

	require.NoError(t, p.stop(context.Background()))
	assert.NoError(t, p.Serve(context.Background()))
}

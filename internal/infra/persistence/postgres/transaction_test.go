package postgres

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewAchievementRepository().Append(ctx, &entity.Achievement{Date: "2024", Title: "Kept"})
	})
	require.NoError(t, err)

	list, err := NewAchievementRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAchievementRepository().Append(ctx, &entity.Achievement{Date: "2024", Title: "Lost"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := NewAchievementRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

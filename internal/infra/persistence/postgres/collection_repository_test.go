package postgres

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepository_AppendAssignsPositions(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))

	first := &entity.Project{Title: "One", Description: "first", Tags: []string{"go"}}
	second := &entity.Project{Title: "Two", Description: "second"}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, []string{}, second.Tags)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "One", list[0].Title)
	assert.Equal(t, []string{"go"}, list[0].Tags)
	assert.Equal(t, "Two", list[1].Title)
}

func TestCollectionRepository_UpdateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepository(newTestDB(t))

	record := &entity.Achievement{Date: "2024", Title: "Award"}
	require.NoError(t, repo.Append(ctx, record))

	record.Detail = "Best paper"
	require.NoError(t, repo.Update(ctx, record))
	assert.Equal(t, "Best paper", record.Detail)
	assert.Equal(t, 0, record.Position)

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Best paper", found.Detail)
}

func TestCollectionRepository_UpdateMissing(t *testing.T) {
	repo := NewCertificateRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.Certificate{ID: uuid.New(), Title: "X", Issuer: "Y"})
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestCollectionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCertificateRepository(newTestDB(t))

	record := &entity.Certificate{Title: "CKA", Issuer: "CNCF"}
	require.NoError(t, repo.Append(ctx, record))

	deleted, err := repo.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCollectionRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSkillRepository(newTestDB(t))

	require.NoError(t, repo.Append(ctx, &entity.SkillCategory{Category: "Old", Items: []string{"x"}}))

	records := []*entity.SkillCategory{
		{Category: "Backend", Items: []string{"Go", "SQL"}},
		{Category: "Frontend", Items: []string{"TS"}},
	}
	require.NoError(t, repo.ReplaceAll(ctx, records))
	assert.NotEqual(t, uuid.Nil, records[0].ID)
	assert.Equal(t, 1, records[1].Position)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Backend", list[0].Category)
	assert.Equal(t, []string{"Go", "SQL"}, list[0].Items)
	assert.Equal(t, "Frontend", list[1].Category)
}

func TestCollectionRepository_ReplaceAllEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewSkillRepository(newTestDB(t))

	require.NoError(t, repo.Append(ctx, &entity.SkillCategory{Category: "Old"}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCollectionRepository_ReplaceAllRollsBackOnConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewSkillRepository(newTestDB(t))

	require.NoError(t, repo.Append(ctx, &entity.SkillCategory{Category: "Keep"}))

	err := repo.ReplaceAll(ctx, []*entity.SkillCategory{{Category: "Dup"}, {Category: "Dup"}})
	require.Error(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keep", list[0].Category)
}

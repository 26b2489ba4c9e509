package impl

import (
	"context"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockRepo "folio/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSkillService(t *testing.T) (*mockRepo.MockCollectionRepository[entity.SkillCategory], *mockRepo.TransactionManager, CollectionServiceParams) {
	t.Helper()

	repo := mockRepo.NewMockCollectionRepository[entity.SkillCategory](t)
	txManager := newTxManager(&mockRepo.RepositoryFactory{Skills: repo})

	return repo, txManager, CollectionServiceParams{TxManager: txManager, Logger: newDiscardLogger()}
}

func TestCollectionService_Name(t *testing.T) {
	_, _, params := createTestSkillService(t)

	assert.Equal(t, "skills", NewSkillService(params).Name())
	assert.Equal(t, "projects", NewProjectService(params).Name())
	assert.Equal(t, "certificates", NewCertificateService(params).Name())
	assert.Equal(t, "achievements", NewAchievementService(params).Name())
}

func TestCollectionService_Create_AppendsAndReturnsCollection(t *testing.T) {
	repo, txManager, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()

	existing := &entity.SkillCategory{ID: uuid.New(), Category: "Backend", Items: []string{"Go"}, Position: 0}
	record := &entity.SkillCategory{ID: uuid.New(), Category: "Frontend", Position: 9, CreatedAt: time.Now()}
	appended := &entity.SkillCategory{ID: uuid.New(), Category: "Frontend", Items: []string{}, Position: 1}

	repo.EXPECT().List(ctx).Return([]*entity.SkillCategory{existing}, nil).Once()
	repo.EXPECT().Append(ctx, mock.MatchedBy(func(s *entity.SkillCategory) bool {
		return s.ID == uuid.Nil && s.Position == 0 && s.CreatedAt.IsZero() && s.Items != nil
	})).Return(nil)
	repo.EXPECT().List(ctx).Return([]*entity.SkillCategory{existing, appended}, nil).Once()

	records, err := srv.Create(ctx, record)

	require.NoError(t, err)
	assert.Equal(t, []*entity.SkillCategory{existing, appended}, records)
	assert.Equal(t, 1, txManager.Calls)
}

func TestCollectionService_Create_MissingRequiredField(t *testing.T) {
	_, txManager, params := createTestSkillService(t)
	srv := NewSkillService(params)

	_, err := srv.Create(context.Background(), &entity.SkillCategory{Items: []string{"Go"}})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 0, txManager.Calls)
}

func TestCollectionService_Create_DuplicateCategory(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]*entity.SkillCategory{{ID: uuid.New(), Category: "Backend"}}, nil)

	_, err := srv.Create(ctx, &entity.SkillCategory{Category: "  backend "})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCollectionService_Create_ProjectsSkipUniqueness(t *testing.T) {
	repo := mockRepo.NewMockCollectionRepository[entity.Project](t)
	txManager := newTxManager(&mockRepo.RepositoryFactory{Projects: repo})
	srv := NewProjectService(CollectionServiceParams{TxManager: txManager, Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	repo.EXPECT().List(ctx).Return([]*entity.Project{}, nil).Once()

	_, err := srv.Create(ctx, &entity.Project{Title: "Folio", Description: "Portfolio backend"})

	require.NoError(t, err)
}

func TestCollectionService_Update_AppliesPatch(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()
	id := uuid.New()

	current := &entity.SkillCategory{ID: id, Category: "Backend", Items: []string{"Go"}}
	items := []string{"Go", "SQL"}

	repo.EXPECT().FindByID(ctx, id).Return(current, nil)
	repo.EXPECT().List(ctx).Return([]*entity.SkillCategory{current}, nil)
	repo.EXPECT().Update(ctx, mock.MatchedBy(func(s *entity.SkillCategory) bool {
		return s.Category == "Backend" && len(s.Items) == 2
	})).Return(nil)

	records, err := srv.Update(ctx, id, &entity.SkillCategoryPatch{Items: &items})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, items, records[0].Items)
}

func TestCollectionService_Update_Missing(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()
	id := uuid.New()
	category := "Ops"

	repo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrRecordNotFound)

	_, err := srv.Update(ctx, id, &entity.SkillCategoryPatch{Category: &category})

	require.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestCollectionService_Update_ClearingRequiredFieldFails(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()
	id := uuid.New()
	empty := ""

	repo.EXPECT().FindByID(ctx, id).Return(&entity.SkillCategory{ID: id, Category: "Backend"}, nil)

	_, err := srv.Update(ctx, id, &entity.SkillCategoryPatch{Category: &empty})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCollectionService_Delete_MissingIsNoop(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()
	id := uuid.New()
	remaining := []*entity.SkillCategory{{ID: uuid.New(), Category: "Backend"}}

	repo.EXPECT().Delete(ctx, id).Return(false, nil)
	repo.EXPECT().List(ctx).Return(remaining, nil)

	records, err := srv.Delete(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, remaining, records)
}

func TestCollectionService_Replace_ResetsIdentity(t *testing.T) {
	repo, txManager, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()

	incoming := []*entity.SkillCategory{
		{ID: uuid.New(), Category: "Backend", Items: []string{"Go"}, Position: 7},
		{Category: "Frontend"},
	}
	stored := []*entity.SkillCategory{
		{ID: uuid.New(), Category: "Backend", Items: []string{"Go"}, Position: 0},
		{ID: uuid.New(), Category: "Frontend", Items: []string{}, Position: 1},
	}

	repo.EXPECT().ReplaceAll(ctx, mock.MatchedBy(func(records []*entity.SkillCategory) bool {
		return len(records) == 2 && records[0].ID == uuid.Nil && records[0].Position == 0 &&
			records[0].Category == "Backend" && records[1].Items != nil
	})).Return(nil)
	repo.EXPECT().List(ctx).Return(stored, nil)

	records, err := srv.Replace(ctx, incoming)

	require.NoError(t, err)
	assert.Equal(t, stored, records)
	assert.Equal(t, 1, txManager.Calls)
}

func TestCollectionService_Replace_RejectsInvalidItem(t *testing.T) {
	_, txManager, params := createTestSkillService(t)
	srv := NewSkillService(params)

	_, err := srv.Replace(context.Background(), []*entity.SkillCategory{{Category: "Backend"}, {Category: ""}})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "item 1")
	assert.Equal(t, 0, txManager.Calls)
}

func TestCollectionService_Replace_RejectsDuplicateCategories(t *testing.T) {
	_, txManager, params := createTestSkillService(t)
	srv := NewSkillService(params)

	_, err := srv.Replace(context.Background(), []*entity.SkillCategory{{Category: "Backend"}, {Category: "BACKEND"}})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 0, txManager.Calls)
}

func TestCollectionService_Replace_Empty(t *testing.T) {
	repo, _, params := createTestSkillService(t)
	srv := NewSkillService(params)
	ctx := context.Background()

	repo.EXPECT().ReplaceAll(ctx, []*entity.SkillCategory{}).Return(nil)
	repo.EXPECT().List(ctx).Return([]*entity.SkillCategory{}, nil)

	records, err := srv.Replace(ctx, []*entity.SkillCategory{})

	require.NoError(t, err)
	assert.Empty(t, records)
}

package postgres

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetMissing(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileRepository_CreateUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	profile := &entity.Profile{Name: "Ada", Socials: entity.Socials{GitHub: "https://github.com/ada"}}
	require.NoError(t, repo.Create(ctx, profile))

	profile.Tagline = "Engineer"
	profile.Socials = entity.Socials{LinkedIn: "https://linkedin.com/in/ada"}
	profile.ResumeURL = "/uploads/docs/resume.pdf"
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Engineer", got.Tagline)
	assert.Equal(t, entity.Socials{LinkedIn: "https://linkedin.com/in/ada"}, got.Socials)
	assert.Equal(t, "/uploads/docs/resume.pdf", got.ResumeURL)
}

func TestProfileRepository_UpdateClearsField(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	profile := &entity.Profile{Name: "Ada", CVURL: "/uploads/docs/cv.pdf"}
	require.NoError(t, repo.Create(ctx, profile))

	profile.CVURL = ""
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.CVURL)
}

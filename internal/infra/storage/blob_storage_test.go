package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"folio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "/uploads/", newDiscardLogger())

	url, err := store.Save(ctx, "profile/a.jpg", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profile/a.jpg", url)

	data, err := bucket.ReadAll(ctx, "profile/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	attrs, err := bucket.Attributes(ctx, "profile/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, url))
	exists, err := bucket.Exists(ctx, "profile/a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, url))
}

func TestBlobStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "secret.txt", []byte("x"), nil))
	store := NewBlobStorage(bucket, "https://cdn.example.com/assets", newDiscardLogger())

	for _, url := range []string{"", "https://elsewhere.example.com/secret.txt", "https://cdn.example.com/assets/../secret.txt"} {
		assert.NoError(t, store.Delete(ctx, url))
	}

	exists, err := bucket.Exists(ctx, "secret.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewAssetStorage_FileProvider(t *testing.T) {
	dir := t.TempDir()
	lc := fxtest.NewLifecycle(t)

	store, err := NewAssetStorage(Params{
		Lc: lc,
		Config: &config.Config{Upload: &config.UploadConfig{
			Provider:      config.UploadProviderFile,
			Dir:           dir,
			PublicBaseURL: "/uploads",
		}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	lc.RequireStart()
	url, err := store.Save(context.Background(), "docs/cv.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/docs/cv.pdf", url)
	assert.FileExists(t, dir+"/docs/cv.pdf")
	lc.RequireStop()
}

func TestNewAssetStorage_InvalidProvider(t *testing.T) {
	for _, cfg := range []*config.UploadConfig{
		{Provider: "ftp"},
		{Provider: config.UploadProviderBucket},
	} {
		_, err := NewAssetStorage(Params{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Upload: cfg},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	}
}

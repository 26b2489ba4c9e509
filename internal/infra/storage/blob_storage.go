// Package storage keeps uploaded assets in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"folio/config"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // registers gs:// bucket URLs
	_ "gocloud.dev/blob/s3blob"  // registers s3:// bucket URLs
	"gocloud.dev/gcerrors"
)

// blobStorage implements service.AssetStorage on top of a gocloud bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the asset storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAssetStorage opens the configured bucket and closes it on shutdown.
func NewAssetStorage(params Params) (service.AssetStorage, error) {
	cfg := params.Config.Upload

	bucket, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Asset storage ready",
		slog.String("provider", cfg.Provider),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// NewBlobStorage wraps an open bucket. URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.AssetStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func openBucket(ctx context.Context, cfg *config.UploadConfig) (*blob.Bucket, error) {
	switch cfg.Provider {
	case config.UploadProviderFile:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create upload dir %s", cfg.Dir)
		}
		bucket, err := fileblob.OpenBucket(cfg.Dir, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open file bucket")
		}

		return bucket, nil
	case config.UploadProviderBucket:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for bucket provider")
		}
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	default:
		return nil, errors.Errorf("unknown upload provider: %s", cfg.Provider)
	}
}

func (s *blobStorage) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		s.logger.DebugContext(ctx, "Skipping delete of foreign asset URL", slog.String("url", url))

		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// keyFor maps a public URL back to its key. Keys with traversal segments are refused.
func (s *blobStorage) keyFor(url string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", false
	}

	return key, true
}

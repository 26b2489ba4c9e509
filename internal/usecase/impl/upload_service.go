package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/errors"
	"folio/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const processedImageType = "image/jpeg"

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Storage   service.AssetStorage
	Images    service.ImageProcessor
	Config    *config.Config
	Logger    *slog.Logger
}

type uploadService struct {
	txManager     repository.TransactionManager
	storage       service.AssetStorage
	images        service.ImageProcessor
	imageMaxBytes int64
	docMaxBytes   int64
	logger        *slog.Logger
	now           func() time.Time
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	uploadCfg := params.Config.Upload
	if uploadCfg == nil {
		uploadCfg = &config.UploadConfig{}
	}

	return &uploadService{
		txManager:     params.TxManager,
		storage:       params.Storage,
		images:        params.Images,
		imageMaxBytes: uploadCfg.ImageMaxBytes(),
		docMaxBytes:   uploadCfg.DocumentMaxBytes(),
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *uploadService) MaxBytes(kind entity.AssetKind) int64 {
	if kind.Class() == entity.AssetClassImage {
		return srv.imageMaxBytes
	}

	return srv.docMaxBytes
}

// Upload stores the file first and only then points the profile slot at it.
// The previous file is removed once the profile update has committed.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrNoFile
	}
	if _, ok := entity.ParseAssetKind(string(input.Kind)); !ok {
		return nil, domainerrors.ErrUnknownAssetKind.WithDetails(string(input.Kind))
	}

	limit := srv.MaxBytes(input.Kind)
	if int64(len(input.Data)) > limit {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("limit is " + bytes.Format(limit))
	}

	contentType, ext, data, err := srv.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", input.Kind.StoragePrefix(), newObjectID(), ext)

	url, err := srv.storage.Save(ctx, key, contentType, data)
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", "error", err, "kind", input.Kind, "key", key)

		return nil, domainerrors.ErrStorageFailed
	}

	var (
		profile  *entity.Profile
		previous string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		found, err := profileRepo.Get(ctx)
		if err != nil {
			return err
		}

		previous = found.AssetURL(input.Kind)
		found.SetAssetURL(input.Kind, url)
		found.UpdatedAt = srv.now()

		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		srv.deleteQuietly(ctx, url)

		return nil, errors.Wrap(err, "failed to attach upload to profile")
	}

	if previous != "" && previous != url {
		srv.deleteQuietly(ctx, previous)
	}

	srv.log(ctx).Info("Asset uploaded", "kind", input.Kind, "url", url, "size", len(data))

	return &usecase.UploadOutput{
		Kind:        input.Kind,
		URL:         url,
		ContentType: contentType,
		Size:        len(data),
		Profile:     profile,
	}, nil
}

func (srv *uploadService) Remove(ctx context.Context, kind entity.AssetKind) (*entity.Profile, error) {
	if _, ok := entity.ParseAssetKind(string(kind)); !ok {
		return nil, domainerrors.ErrUnknownAssetKind.WithDetails(string(kind))
	}

	var (
		profile  *entity.Profile
		previous string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		found, err := profileRepo.Get(ctx)
		if err != nil {
			return err
		}

		previous = found.AssetURL(kind)
		if previous == "" {
			profile = found

			return nil
		}

		found.SetAssetURL(kind, "")
		found.UpdatedAt = srv.now()
		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove asset")
	}

	if previous != "" {
		srv.deleteQuietly(ctx, previous)
		srv.log(ctx).Info("Asset removed", "kind", kind, "url", previous)
	}

	return profile, nil
}

// prepare checks the declared and sniffed types and normalizes images.
// It returns the content type, file extension and bytes to store.
func (srv *uploadService) prepare(ctx context.Context, input *usecase.UploadInput) (string, string, []byte, error) {
	class := input.Kind.Class()

	declared := baseMediaType(input.ContentType)
	if !class.AllowsMIME(declared) {
		return "", "", nil, domainerrors.ErrUnsupportedFileType.WithDetails(
			fmt.Sprintf("%q is not allowed, expected one of %s", declared, strings.Join(class.AllowedMIMETypes(), ", ")))
	}

	if class != entity.AssetClassImage {
		return declared, documentExtension(input.Filename, input.Data), input.Data, nil
	}

	detected := mimetype.Detect(input.Data)
	sniffed := baseMediaType(detected.String())
	if !class.AllowsMIME(sniffed) {
		return "", "", nil, domainerrors.ErrUnsupportedFileType.WithDetails(
			fmt.Sprintf("content looks like %q", sniffed))
	}

	processed, err := srv.images.Process(input.Data)
	if err != nil {
		srv.log(ctx).Warn("Image processing failed, storing original", "error", err, "type", sniffed)

		return sniffed, detected.Extension(), input.Data, nil
	}

	return processedImageType, ".jpg", processed, nil
}

func (srv *uploadService) deleteQuietly(ctx context.Context, url string) {
	if err := srv.storage.Delete(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to delete stored asset", "error", err, "url", url)
	}
}

func baseMediaType(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(base))
}

func documentExtension(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".doc", ".docx":
		return ext
	default:
		return mimetype.Detect(data).Extension()
	}
}

func newObjectID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// genericFormField is accepted for every kind when the kind's own field is absent.
const genericFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts profile asset uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the multipart file part in the slot named by :kind. The part
// is read from the kind's own field (profileImage, resume, cv) and falls back
// to "file".
func (h *UploadHandler) Upload(c echo.Context) error {
	kind, ok := entity.ParseAssetKind(c.Param("kind"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnknownAssetKind.WithDetails(c.Param("kind")))
	}

	fileHeader, err := formFile(c, kind)
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return response.HandleAppError(c, domainerrors.ErrFileTooLarge)
		}

		return response.HandleAppError(c, domainerrors.ErrNoFile)
	}

	limit := h.uploadUC.MaxBytes(kind)
	if fileHeader.Size > limit {
		return response.HandleAppError(c, domainerrors.ErrFileTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}
	if int64(len(data)) > limit {
		return response.HandleAppError(c, domainerrors.ErrFileTooLarge)
	}

	output, err := h.uploadUC.Upload(c.Request().Context(), &usecase.UploadInput{
		Kind:        kind,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger).
		Info("Upload accepted", slog.String("kind", string(kind)), slog.String("filename", fileHeader.Filename))

	return response.Success(c, http.StatusOK, output)
}

func formFile(c echo.Context, kind entity.AssetKind) (*multipart.FileHeader, error) {
	fileHeader, err := c.FormFile(kind.FormField())
	if err == nil || !errors.Is(err, http.ErrMissingFile) {
		return fileHeader, err
	}

	return c.FormFile(genericFormField)
}

// Remove clears the slot named by :kind and deletes its file.
func (h *UploadHandler) Remove(c echo.Context) error {
	kind, ok := entity.ParseAssetKind(c.Param("kind"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnknownAssetKind.WithDetails(c.Param("kind")))
	}

	profile, err := h.uploadUC.Remove(c.Request().Context(), kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

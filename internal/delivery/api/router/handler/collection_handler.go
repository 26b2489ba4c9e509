package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CollectionHandler serves the admin CRUD and bulk replace routes of one
// portfolio collection. Every mutation responds with the whole collection.
type CollectionHandler[T, P any] struct {
	collectionUC usecase.CollectionUsecase[T, P]
	logger       *slog.Logger
}

type (
	SkillHandler       = CollectionHandler[entity.SkillCategory, entity.SkillCategoryPatch]
	ProjectHandler     = CollectionHandler[entity.Project, entity.ProjectPatch]
	CertificateHandler = CollectionHandler[entity.Certificate, entity.CertificatePatch]
	AchievementHandler = CollectionHandler[entity.Achievement, entity.AchievementPatch]
)

func newCollectionHandler[T, P any](uc usecase.CollectionUsecase[T, P], logger *slog.Logger) *CollectionHandler[T, P] {
	return &CollectionHandler[T, P]{collectionUC: uc, logger: logger}
}

func NewSkillHandler(uc usecase.SkillUsecase, logger *slog.Logger) *SkillHandler {
	return newCollectionHandler(uc, logger)
}

func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return newCollectionHandler(uc, logger)
}

func NewCertificateHandler(uc usecase.CertificateUsecase, logger *slog.Logger) *CertificateHandler {
	return newCollectionHandler(uc, logger)
}

func NewAchievementHandler(uc usecase.AchievementUsecase, logger *slog.Logger) *AchievementHandler {
	return newCollectionHandler(uc, logger)
}

// Name is the collection's route segment.
func (h *CollectionHandler[T, P]) Name() string {
	return h.collectionUC.Name()
}

func (h *CollectionHandler[T, P]) Create(c echo.Context) error {
	record := new(T)
	if err := c.Bind(record); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}

	records, err := h.collectionUC.Create(c.Request().Context(), record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, records)
}

func (h *CollectionHandler[T, P]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	patch := new(P)
	if err := c.Bind(patch); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}

	records, err := h.collectionUC.Update(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// Delete never fails on the key: a key that is not a UUID names no record,
// so the unchanged collection is returned.
func (h *CollectionHandler[T, P]) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		records, err := h.collectionUC.List(ctx)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, records)
	}

	records, err := h.collectionUC.Delete(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// Replace swaps the whole collection. The body is a JSON list or an object
// holding the list under the collection name.
func (h *CollectionHandler[T, P]) Replace(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("failed to read request body"))
	}

	records, err := decodeReplacePayload[T](raw, h.Name())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.collectionUC.Replace(c.Request().Context(), records)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func decodeReplacePayload[T any](raw []byte, name string) ([]*T, error) {
	raw = bytes.TrimSpace(raw)
	invalid := domainerrors.ErrInvalidInput.WithDetails("expected a JSON array or an object with a \"" + name + "\" array")

	if len(raw) == 0 {
		return nil, invalid
	}

	switch raw[0] {
	case '[':
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, invalid
		}
		list, ok := wrapper[name]
		list = bytes.TrimSpace(list)
		if !ok || len(list) == 0 || list[0] != '[' {
			return nil, invalid
		}
		raw = list
	default:
		return nil, invalid
	}

	var records []*T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, invalid
	}
	for i, record := range records {
		if record == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("item %d is null", i))
		}
	}

	return records, nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("invalid id")
	}

	return id, nil
}

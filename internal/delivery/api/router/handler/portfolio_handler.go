package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PortfolioHandlerParams holds dependencies for PortfolioHandler, injected by Fx.
type PortfolioHandlerParams struct {
	fx.In

	PortfolioUC usecase.PortfolioUsecase
	Logger      *slog.Logger
}

// PortfolioHandler serves the public portfolio and the admin profile editor.
type PortfolioHandler struct {
	portfolioUC usecase.PortfolioUsecase
	logger      *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler
func NewPortfolioHandler(params PortfolioHandlerParams) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUC: params.PortfolioUC,
		logger:      params.Logger,
	}
}

// GetPortfolio returns the whole portfolio. Public and admin reads share it.
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	portfolio, err := h.portfolioUC.GetPortfolio(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, portfolio)
}

// GetSection returns a single section of the public portfolio.
func (h *PortfolioHandler) GetSection(c echo.Context) error {
	section, err := h.portfolioUC.GetSection(c.Request().Context(), c.Param("section"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, section)
}

// UpdateProfile merges the given profile fields. The body is either the
// fields themselves or an object wrapping them under "profile".
func (h *PortfolioHandler) UpdateProfile(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("failed to read request body"))
	}

	patch, err := decodeProfilePatch(raw)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.portfolioUC.UpdateProfile(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func decodeProfilePatch(raw []byte) (*entity.ProfilePatch, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile data is required")
	}

	var wrapper struct {
		Profile json.RawMessage `json:"profile"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body")
	}
	if len(wrapper.Profile) > 0 && wrapper.Profile[0] == '{' {
		raw = wrapper.Profile
	}

	var patch entity.ProfilePatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("malformed profile fields")
	}

	return &patch, nil
}

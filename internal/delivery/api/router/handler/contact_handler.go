package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var input usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}
	input.IP = c.RealIP()

	output, err := h.contactUC.Submit(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"messageId": output.MessageID,
		"message":   "Message received",
	})
}

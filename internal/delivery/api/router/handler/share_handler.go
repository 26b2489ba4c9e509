package handler

import (
	"log/slog"
	"net/http"

	"folio/config"
	"folio/internal/delivery/api/response"
	"folio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	QRCode service.QRCodeService
	Config *config.Config
	Logger *slog.Logger
}

// ShareHandler renders a QR code linking to the public site.
type ShareHandler struct {
	qrcode  service.QRCodeService
	siteURL string
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		qrcode:  params.QRCode,
		siteURL: params.Config.Site.BaseURL,
		logger:  params.Logger,
	}
}

func (h *ShareHandler) QRCode(c echo.Context) error {
	png, err := h.qrcode.GenerateLinkQR(h.siteURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

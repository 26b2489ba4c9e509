package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/errors"
	"folio/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LiveSessions upgrades admin requests to live websocket sessions.
type LiveSessions interface {
	Serve(w http.ResponseWriter, r *http.Request, username string) error
}

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Logger *slog.Logger
}

// LiveHandler attaches admin dashboards to the live event feed.
type LiveHandler struct {
	sessions LiveSessions
	logger   *slog.Logger
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{
		sessions: params.Hub,
		logger:   params.Logger,
	}
}

func (h *LiveHandler) Connect(c echo.Context) error {
	username, ok := deliverycontext.GetUsername(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	err := h.sessions.Serve(c.Response(), c.Request(), username)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, realtime.ErrHubStopped):
		return response.Error(c, http.StatusServiceUnavailable, "LIVE_UNAVAILABLE", "Live updates are not available", nil)
	default:
		// The upgrader already answered the client.
		deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Live session upgrade failed", slog.Any("error", err))

		return nil
	}
}

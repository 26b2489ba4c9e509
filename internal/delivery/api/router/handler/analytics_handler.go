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

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves public event tracking and the admin dashboard queries.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// Track records a visitor event reported by the public site.
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var input usecase.TrackInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}
	input.IP = c.RealIP()
	input.UserAgent = c.Request().UserAgent()

	if _, err := h.analyticsUC.Track(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event tracked successfully"})
}

func (h *AnalyticsHandler) Summary(c echo.Context) error {
	var days int
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("days must be an integer"))
	}

	summary, err := h.analyticsUC.Summary(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *AnalyticsHandler) Events(c echo.Context) error {
	var query usecase.EventsQuery
	err := echo.QueryParamsBinder(c).
		Int("limit", &query.Limit).
		Int("page", &query.Page).
		String("type", &query.Type).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("limit and page must be integers"))
	}

	events, err := h.analyticsUC.RecentEvents(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

func (h *AnalyticsHandler) Visitor(c echo.Context) error {
	history, err := h.analyticsUC.VisitorHistory(c.Request().Context(), c.Param("visitorId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

package middleware

import (
	"log/slog"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/infra/netguard"

	"github.com/labstack/echo/v4"
)

// IPAllowListMiddleware restricts routes to configured client addresses.
// It fails closed when no address is configured.
type IPAllowListMiddleware struct {
	list   *netguard.AllowList
	logger *slog.Logger
}

func NewIPAllowListMiddleware(list *netguard.AllowList, logger *slog.Logger) *IPAllowListMiddleware {
	return &IPAllowListMiddleware{list: list, logger: logger}
}

func (m *IPAllowListMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := netguard.NormalizeIP(c.RealIP())
		logger := deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.String("ip", ip), slog.String("path", c.Request().URL.Path))

		if !m.list.Configured() {
			logger.Warn("Admin allow-list is empty, denying request")

			return response.HandleAppError(c, domainerrors.ErrAllowListNotConfigured)
		}

		if !m.list.Allows(ip) {
			logger.Warn("Client address not in admin allow-list")

			return response.HandleAppError(c, domainerrors.ErrIPNotAllowed)
		}

		logger.Info("Client address allowed")

		return next(c)
	}
}

package middleware

import (
	"log/slog"

	deliverycontext "folio/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRequestID returns echo's request ID middleware with the ID attached to
// the request scope. A client supplied X-Request-Id is reused.
func NewRequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader: echo.HeaderXRequestID,
		Generator:    uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			deliverycontext.Attach(c, requestID, logger)
		},
	})
}

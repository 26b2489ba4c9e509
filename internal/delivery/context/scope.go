package context

import (
	"context"
	"log/slog"

	"folio/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestScope is the per-request state that follows a request below the
// delivery layer. Use cases and repositories only ever see context.Context.
type requestScope struct {
	requestID string
	logger    *slog.Logger
}

type scopeKey struct{}

func scopeFrom(ctx context.Context) requestScope {
	scope, _ := ctx.Value(scopeKey{}).(requestScope)

	return scope
}

// Attach binds requestID to the request: it is stored on the echo.Context for
// the response envelope, and the request context gets the ID plus a logger
// tagged with request_id.
func Attach(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(constants.ContextKeyRequestID, requestID)

	ctx := context.WithValue(c.Request().Context(), scopeKey{}, requestScope{
		requestID: requestID,
		logger:    base.With(slog.String("request_id", requestID)),
	})
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID reported in the response meta. Requests rejected
// before Attach ran fall back to echo's response header, then to a fresh ID.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(constants.ContextKeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID returns a copy of ctx carrying requestID. A logger already in
// the scope is kept.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	scope := scopeFrom(ctx)
	scope.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, scope)
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithLogger returns a copy of ctx whose scoped logger is logger. Background
// jobs use it to give repositories a logger without a request.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	scope := scopeFrom(ctx)
	scope.logger = logger

	return context.WithValue(ctx, scopeKey{}, scope)
}

// LoggerOrDefault returns the scoped logger, or fallback when ctx has none.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := scopeFrom(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}

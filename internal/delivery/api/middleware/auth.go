package middleware

import (
	"log/slog"
	"strings"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix    = "Bearer "
	tokenQueryParam = "token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware authenticates admin requests with session tokens.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate requires a Bearer token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.verify(c, next, bearerToken(c))
	}
}

// AuthenticateQuery also accepts the token as a query parameter, for
// clients such as browsers opening a websocket that cannot set headers.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token = c.QueryParam(tokenQueryParam)
		}

		return m.verify(c, next, token)
	}
}

func (m *AuthMiddleware) verify(c echo.Context, next echo.HandlerFunc, token string) error {
	if token == "" {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	identity, err := m.authUC.Verify(c.Request().Context(), token)
	if err != nil {
		deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger).
			Warn("Rejected session token", slog.Any("error", err), slog.String("path", c.Request().URL.Path))

		return response.HandleAppError(c, err)
	}

	deliverycontext.SetUsername(c, identity.Username)

	return next(c)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

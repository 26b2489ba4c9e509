package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/infra/netguard"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "wrong scheme",
			header:     "Basic YWRtaW46c2VjcmV0",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Verify(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Verify(mock.Anything, "good").
					Return(&usecase.Identity{Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Logger: discardLogger()})

			e := newEcho()
			e.GET("/admin", func(c echo.Context) error {
				username, ok := deliverycontext.GetUsername(c)
				require.True(t, ok)

				return c.String(http.StatusOK, username)
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			} else {
				assert.Equal(t, "admin", rec.Body.String())
			}
		})
	}
}

func TestAuthenticateQuery(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Verify(mock.Anything, "from-query").Return(&usecase.Identity{Username: "admin"}, nil)
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Logger: discardLogger()})

	e := newEcho()
	e.GET("/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, m.AuthenticateQuery)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live?token=from-query", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIPAllowList(t *testing.T) {
	tests := []struct {
		name       string
		allowList  string
		remoteAddr string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty list fails closed",
			remoteAddr: "127.0.0.1:5000",
			wantStatus: http.StatusForbidden,
			wantCode:   "ALLOWLIST_NOT_CONFIGURED",
		},
		{
			name:       "address not listed",
			allowList:  "10.0.0.0/8",
			remoteAddr: "192.168.1.20:5000",
			wantStatus: http.StatusForbidden,
			wantCode:   "IP_NOT_ALLOWED",
		},
		{
			name:       "cidr match",
			allowList:  "127.0.0.1, 10.0.0.0/8",
			remoteAddr: "10.1.2.3:5000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "ipv4 mapped ipv6",
			allowList:  "192.168.1.20",
			remoteAddr: "[::ffff:192.168.1.20]:5000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewIPAllowListMiddleware(netguard.Parse(tt.allowList), discardLogger())

			e := newEcho()
			e.POST("/upload", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Guard)

			req := httptest.NewRequest(http.MethodPost, "/upload", nil)
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				errInfo := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, errInfo.Code)
				assert.Nil(t, errInfo.Details)
			}
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail any
	}{
		{
			name:       "app error keeps details",
			err:        domainerrors.ErrValidationFailed.WithDetails("title is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: "title is required",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			errInfo := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, errInfo.Code)
			assert.Equal(t, tt.wantDetail, errInfo.Details)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "folio/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestID(logger))

	var fromCtx, fromEcho string
	e.GET("/", func(c echo.Context) error {
		fromCtx = deliverycontext.RequestIDFromContext(c.Request().Context())
		fromEcho = deliverycontext.RequestID(c)
		deliverycontext.LoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, header)
	assert.Equal(t, header, fromCtx)
	assert.Equal(t, header, fromEcho)
	assert.Contains(t, buf.String(), `"request_id":"`+header+`"`)
}

func TestRequestID_ReusesClientHeader(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestID(slog.Default()))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestLogger(logger))
	e.GET("/missing", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"uri":"/missing"`)
}

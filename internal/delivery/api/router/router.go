// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"folio/config"
	"folio/internal/delivery/api/middleware"
	"folio/internal/delivery/api/response"
	"folio/internal/delivery/api/router/handler"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	// APIPrefix is the mount point of every route.
	APIPrefix = "/api"
	// UploadPrefix carries its own body limit instead of the global one.
	UploadPrefix = APIPrefix + "/admin/upload"

	// multipartOverhead covers the form boundaries and part headers around the file.
	multipartOverhead = 64 << 10
	rateLimitExpiry   = 3 * time.Minute
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	PortfolioHandler   *handler.PortfolioHandler
	SkillHandler       *handler.SkillHandler
	ProjectHandler     *handler.ProjectHandler
	CertificateHandler *handler.CertificateHandler
	AchievementHandler *handler.AchievementHandler
	UploadHandler      *handler.UploadHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	ContactHandler     *handler.ContactHandler
	LiveHandler        *handler.LiveHandler
	ShareHandler       *handler.ShareHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IPAllowList        *middleware.IPAllowListMiddleware
	Config             *config.Config
	Logger             *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	portfolioHandler   *handler.PortfolioHandler
	skillHandler       *handler.SkillHandler
	projectHandler     *handler.ProjectHandler
	certificateHandler *handler.CertificateHandler
	achievementHandler *handler.AchievementHandler
	uploadHandler      *handler.UploadHandler
	analyticsHandler   *handler.AnalyticsHandler
	contactHandler     *handler.ContactHandler
	liveHandler        *handler.LiveHandler
	shareHandler       *handler.ShareHandler
	authMiddleware     *middleware.AuthMiddleware
	ipAllowList        *middleware.IPAllowListMiddleware
	config             *config.Config
	logger             *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		portfolioHandler:   params.PortfolioHandler,
		skillHandler:       params.SkillHandler,
		projectHandler:     params.ProjectHandler,
		certificateHandler: params.CertificateHandler,
		achievementHandler: params.AchievementHandler,
		uploadHandler:      params.UploadHandler,
		analyticsHandler:   params.AnalyticsHandler,
		contactHandler:     params.ContactHandler,
		liveHandler:        params.LiveHandler,
		shareHandler:       params.ShareHandler,
		authMiddleware:     params.AuthMiddleware,
		ipAllowList:        params.IPAllowList,
		config:             params.Config,
		logger:             params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(APIPrefix)

	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter())
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public portfolio routes
	publicGroup := api.Group("/portfolio/public")
	{
		publicGroup.GET("/profile", r.portfolioHandler.GetPortfolio)
		publicGroup.GET("/qr", r.shareHandler.QRCode)
		publicGroup.GET("/:section", r.portfolioHandler.GetSection)
	}

	// Public writes are rate limited per client address
	api.POST("/portfolio/contact", r.contactHandler.Submit, r.rateLimiter())
	api.POST("/track", r.analyticsHandler.Track, r.rateLimiter())

	adminGroup := api.Group("/admin")

	// Browsers cannot set headers on websocket requests
	adminGroup.GET("/live", r.liveHandler.Connect, r.authMiddleware.AuthenticateQuery)

	// Uploads are restricted by client address before the token is checked
	uploadGroup := adminGroup.Group("/upload",
		r.ipAllowList.Guard,
		r.authMiddleware.Authenticate,
		fileTooLarge,
		echomiddleware.BodyLimit(r.uploadBodyLimit()),
	)
	{
		uploadGroup.POST("/:kind", r.uploadHandler.Upload)
		uploadGroup.DELETE("/:kind", r.uploadHandler.Remove)
	}

	securedGroup := adminGroup.Group("", r.authMiddleware.Authenticate)
	{
		securedGroup.GET("/session", r.authHandler.Session)
		securedGroup.GET("/portfolio", r.portfolioHandler.GetPortfolio)
		securedGroup.PUT("/portfolio", r.portfolioHandler.UpdateProfile)

		registerCollection(securedGroup, r.skillHandler)
		registerCollection(securedGroup, r.projectHandler)
		registerCollection(securedGroup, r.certificateHandler)
		registerCollection(securedGroup, r.achievementHandler)

		securedGroup.GET("/analytics/summary", r.analyticsHandler.Summary)
		securedGroup.GET("/analytics/events", r.analyticsHandler.Events)
		securedGroup.GET("/analytics/visitors/:visitorId", r.analyticsHandler.Visitor)
	}
}

func registerCollection[T, P any](g *echo.Group, h *handler.CollectionHandler[T, P]) {
	name := h.Name()

	g.POST("/portfolio/"+name, h.Create)
	g.PUT("/portfolio/"+name+"/:id", h.Update)
	g.DELETE("/portfolio/"+name+"/:id", h.Delete)
	g.PUT("/"+name, h.Replace)
}

// rateLimiter allows RequestsPerMinute per client address with the configured burst.
// Each call has its own store.
func (r *router) rateLimiter() echo.MiddlewareFunc {
	cfg := r.config.RateLimit
	if cfg == nil {
		cfg = &config.RateLimitConfig{}
	}
	perMinute := max(cfg.RequestsPerMinute, 1)
	burst := max(cfg.Burst, 1)

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     burst,
		ExpiresIn: rateLimitExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			deliverycontext.LoggerOrDefault(c.Request().Context(), r.logger).
				Warn("Rate limit exceeded", slog.String("ip", identifier), slog.String("path", c.Request().URL.Path))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
		},
	})
}

// uploadBodyLimit is the larger of the two asset limits plus multipart framing.
func (r *router) uploadBodyLimit() string {
	uploadCfg := r.config.Upload
	if uploadCfg == nil {
		uploadCfg = &config.UploadConfig{}
	}
	limit := max(uploadCfg.ImageMaxBytes(), uploadCfg.DocumentMaxBytes()) + multipartOverhead

	return strconv.FormatInt(limit, 10) + "B"
}

// fileTooLarge reports body limit rejections as an upload error.
func fileTooLarge(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return domainerrors.ErrFileTooLarge
		}

		return err
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"folio/config"
	"folio/internal/delivery"
	"folio/internal/delivery/api"
	"folio/internal/delivery/api/middleware"
	"folio/internal/delivery/api/router/handler"
	"folio/internal/delivery/worker"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"
	"folio/internal/infra/auth"
	"folio/internal/infra/cache"
	"folio/internal/infra/imageproc"
	logs "folio/internal/infra/log"
	"folio/internal/infra/netguard"
	"folio/internal/infra/persistence/postgres"
	"folio/internal/infra/pubsub"
	"folio/internal/infra/qrcode"
	"folio/internal/infra/realtime"
	"folio/internal/infra/storage"
	"folio/internal/usecase"
	"folio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	AuthUC      usecase.AuthUsecase
	PortfolioUC usecase.PortfolioUsecase
	Logger      *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		realtime.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewVisitorEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewAssetStorage,
			imageproc.NewImageProcessor,
			qrcode.NewQRCodeService,
			netguard.NewAllowList,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPortfolioService,
			impl.NewSkillService,
			impl.NewProjectService,
			impl.NewCertificateService,
			impl.NewAchievementService,
			impl.NewUploadService,
			impl.NewAnalyticsService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewIPAllowListMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPortfolioHandler,
			handler.NewSkillHandler,
			handler.NewProjectHandler,
			handler.NewCertificateHandler,
			handler.NewAchievementHandler,
			handler.NewUploadHandler,
			handler.NewAnalyticsHandler,
			handler.NewContactHandler,
			handler.NewLiveHandler,
			handler.NewShareHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewPruner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seed creates the configured admin and the profile singleton once the
// database is reachable and migrated.
func seed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.AuthUC.EnsureAdmin(ctx); err != nil {
				return errors.Wrap(err, "failed to seed admin credential")
			}
			if err := params.PortfolioUC.EnsureProfile(ctx); err != nil {
				return errors.Wrap(err, "failed to seed profile")
			}

			params.Logger.Info("Startup seeding complete")

			return nil
		},
	})
}

// startServer launches every delivery after the other start hooks have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

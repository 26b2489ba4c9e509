// Command folioctl provisions admin credentials and manages schema migrations.
package main

import (
	"context"
	"os"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/errors"
	logs "folio/internal/infra/log"
	"folio/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "folioctl",
		Short:        "Administer the folio portfolio backend",
		SilenceUsage: true,
	}

	root.AddCommand(newAdminCmd(), newMigrateCmd())

	return root
}

// withApp starts a minimal application graph, fills targets and runs fn.
// Startup migrations are disabled so that commands act on the schema explicitly.
func withApp(ctx context.Context, options []fx.Option, targets []any, fn func(ctx context.Context) error) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cfg.Migrations.AutoMigrate = false

			return cfg
		}),
		fx.Options(options...),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

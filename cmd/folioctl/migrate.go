package main

import (
	"context"
	"log/slog"

	"folio/internal/errors"
	"folio/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
					sqlDB, err := db.DB()
					if err != nil {
						return errors.Wrap(err, "failed to get sql.DB")
					}

					return postgres.Migrate(ctx, sqlDB, logger)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied state of every migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
					sqlDB, err := db.DB()
					if err != nil {
						return errors.Wrap(err, "failed to get sql.DB")
					}

					return postgres.MigrationStatus(ctx, sqlDB, logger)
				})
			},
		},
	)

	return cmd
}

func withDB(ctx context.Context, fn func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return withApp(ctx, nil, []any{&db, &logger}, func(ctx context.Context) error {
		return fn(ctx, db, logger)
	})
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/infra/auth"
	"folio/internal/infra/persistence/postgres"
	"folio/internal/usecase"
	"folio/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin credential",
	}

	cmd.AddCommand(newAdminCreateCmd(), newAdminResetPasswordCmd())

	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := resolvePassword(cmd.ErrOrStderr(), password)
			if err != nil {
				return err
			}

			return withAuth(cmd.Context(), func(ctx context.Context, authUC usecase.AuthUsecase, logger *slog.Logger) error {
				if err := authUC.CreateAdmin(ctx, username, email, secret); err != nil {
					return err
				}
				logger.Info("Admin credential created", slog.String("username", username))
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %q\n", username)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "admin email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (prompted when omitted, or read from "+passwordEnv+")")

	return cmd
}

func newAdminResetPasswordCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace the admin password and clear any lockout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := resolvePassword(cmd.ErrOrStderr(), password)
			if err != nil {
				return err
			}

			return withAuth(cmd.Context(), func(ctx context.Context, authUC usecase.AuthUsecase, logger *slog.Logger) error {
				if err := authUC.ResetPassword(ctx, username, secret); err != nil {
					return err
				}
				logger.Info("Admin password reset", slog.String("username", username))
				fmt.Fprintf(cmd.OutOrStdout(), "password reset for %q\n", username)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password (prompted when omitted, or read from "+passwordEnv+")")

	return cmd
}

func withAuth(ctx context.Context, fn func(ctx context.Context, authUC usecase.AuthUsecase, logger *slog.Logger) error) error {
	var (
		authUC usecase.AuthUsecase
		logger *slog.Logger
	)

	options := []fx.Option{
		fx.Provide(
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
		),
	}

	return withApp(ctx, options, []any{&authUC, &logger}, func(ctx context.Context) error {
		return fn(ctx, authUC, logger)
	})
}

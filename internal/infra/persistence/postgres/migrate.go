package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"folio/internal/errors"
	"folio/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

var gooseSetup sync.Once

// gooseSlogLogger forwards goose progress lines to slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func setupGoose(logger *slog.Logger) error {
	var err error
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrations.Migrations)
		err = goose.SetDialect("postgres")
	})
	if err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if logger != nil {
		goose.SetLogger(gooseSlogLogger{logger: logger})
	}

	return nil
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// MigrationStatus logs the applied state of every embedded migration.
func MigrationStatus(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to read migration status")
	}

	return nil
}

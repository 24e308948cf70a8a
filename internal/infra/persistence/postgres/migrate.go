package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"todoapp/internal/errors"
	"todoapp/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// gooseSlogLogger routes goose output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

// Fatalf logs and panics; goose only calls it on unrecoverable states.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	if l.logger != nil {
		l.logger.Error("goose", slog.String("message", msg))
	}

	panic(msg)
}

package db

import (
	"context"
	"log/slog"

	"tutorlink/internal/pkg/errs"
	"tutorlink/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from the embedded set. Goose needs
// a *sql.DB, so one is opened from the pool for the duration of the run.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("database migrations applied", "version", version)

	return nil
}

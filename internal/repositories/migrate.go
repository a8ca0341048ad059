package repositories

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/migrations"
)

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		return err
	}

	logger.Log.Info("migrations applied")
	return nil
}

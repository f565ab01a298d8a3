package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies (up=true) or rolls back every embedded migration.
// dsn must use the pgx5:// scheme.
func Migrate(logger *zap.Logger, dsn string, up bool) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("db schema is up to date")
			return nil
		}
		return fmt.Errorf("migrate: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("db migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty), zap.Bool("up", up))

	return nil
}

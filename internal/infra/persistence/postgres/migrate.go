package postgres

import (
	"embed"
	"log/slog"

	"nutriledger/config"
	"nutriledger/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateParams defines the dependencies of Migrate.
type MigrateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Migrate applies the embedded schema migrations when migration.autoMigrate is enabled.
func Migrate(params MigrateParams) error {
	cfg := params.Config.Migration
	if cfg == nil || !cfg.AutoMigrate {
		params.Logger.Info("Schema migration skipped")

		return nil
	}
	if cfg.DatabaseURL == "" {
		return errors.New("migration.databaseUrl is required when autoMigrate is enabled")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "failed to initialise migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read migration version")
	}

	params.Logger.Info("Schema migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

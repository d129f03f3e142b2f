package database

import (
	"database/sql"
	"embed"
	"errors"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/httpfs"

	_ "github.com/lib/pq" // postgres driver for the migration connection
)

//go:embed migrations
var migrations embed.FS

// Migrate applies all pending schema migrations. The migration files are
// embedded in the binary, so the deployed schema always matches the code
// that ships with it.
func Migrate(cfg Config) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(cfg Config) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newMigrator(cfg Config) (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{DatabaseName: cfg.Name})
	if err != nil {
		return nil, err
	}

	source, err := httpfs.New(http.FS(migrations), "migrations")
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("embed", source, cfg.Name, driver)
}

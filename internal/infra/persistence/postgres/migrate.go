package postgres

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations applies every pending migration over a dedicated connection
// that is closed before returning.
func runMigrations(dsn string) error {
	migrationDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}

	driver, err := migratepg.WithInstance(migrationDB, &migratepg.Config{})
	if err != nil {
		_ = migrationDB.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	return migrateUp(driver, "postgres")
}

// migrateUp runs the embedded migrations against driver and closes it.
func migrateUp(driver database.Driver, driverName string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

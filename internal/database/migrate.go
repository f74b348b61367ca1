package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3" // migrate sqlite3 driver
	_ "github.com/golang-migrate/migrate/v4/source/file"      // file:// migration source
)

// RunMigrations applies all pending migrations from migrationsDir to the
// SQLite database at dbPath. Already being up to date is not an error.
func RunMigrations(dbPath, migrationsDir string) error {
	m, err := migrate.New("file://"+migrationsDir, "sqlite3://"+dbPath)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}

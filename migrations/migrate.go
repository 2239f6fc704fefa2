// Package migrations embeds the goose SQL migrations creating the
// reviewAppUsers and BreweryReviews tables. The DDL is portable across
// PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for a database/sql driver with no goose dialect.
var ErrUnsupportedDriver = errors.New("unsupported migration driver")

// Migrate applies every pending migration to db. driver is the database/sql
// driver name the pool was opened with ("pgx", "sqlite3" or "sqlite").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, err := dialectFor(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case "pgx":
		return "postgres", nil
	case "sqlite3", "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

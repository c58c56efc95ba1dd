// Package migrations embeds the goose SQL migrations for every supported
// database dialect and applies them on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB          = errors.New("migration error: db is nil")
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
)

// dirs maps a database/sql driver name to its migrations directory.
var dirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate applies every pending migration for the given driver ("pgx" or
// "sqlite3") to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := dirs[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

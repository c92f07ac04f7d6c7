// Package migrations embeds the SQLite schema of the wellness tracker and
// applies it with goose.
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

// ErrNilDB is returned by [Migrate] when it is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate brings the schema behind db up to the latest embedded version.
// Every statement is idempotent, so running it against an already
// initialized store is a no-op.
func Migrate(db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version reports the schema version currently applied to db.
func Version(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}
	return version, nil
}

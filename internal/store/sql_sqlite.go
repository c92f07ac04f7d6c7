package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.Path, creating its
// directory and schema when missing, and returns the gateway around it.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db := newDB(cfg, log)
	if err := db.Initialize(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, err
	}

	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")
	return db, nil
}

func openSQLite(ctx context.Context, cfg config.DB) (*sqlx.DB, error) {
	// db will be in file
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sqlx.ConnectContext(ctx, "sqlite3", sqliteDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one shared handle; SQLite serializes writers anyway
	conn.SetMaxOpenConns(1)
	return conn, nil
}

func sqliteDSN(cfg config.DB) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	if cfg.BusyTimeout > 0 {
		params.Set("_busy_timeout", strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10))
	}
	return "file:" + cfg.Path + "?" + params.Encode()
}

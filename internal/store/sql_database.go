package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/migrations"
)

// retryDelay is the constant pause between attempts on a busy database.
const retryDelay = 50 * time.Millisecond

// DB is the persistence gateway: the single shared SQLite handle plus the
// query helpers every repository goes through.
//
// A DB obtained inside [DB.WithinTx] is bound to that transaction; its
// helpers run on the transaction and nested WithinTx calls join it.
type DB struct {
	cfg    config.DB
	logger *logger.Logger

	errorClassificator ErrorClassificator
	maxRetries         uint64

	mu   *sync.Mutex
	conn *sqlx.DB

	// ext is conn outside a transaction and tx inside one.
	ext sqlx.ExtContext
	tx  *sqlx.Tx
}

func newDB(cfg config.DB, log *logger.Logger) *DB {
	return &DB{
		cfg:                cfg,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
		maxRetries:         cfg.MaxRetries,
		mu:                 &sync.Mutex{},
	}
}

// attach binds an already opened connection, skipping the open and
// migration steps of [DB.Initialize].
func (db *DB) attach(conn *sqlx.DB) *DB {
	db.conn = conn
	db.ext = conn
	return db
}

// Initialize opens the database and applies the schema. It is idempotent:
// on a live handle it does nothing, on a closed or broken one it reopens.
func (db *DB) Initialize(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn != nil {
		if err := db.conn.PingContext(ctx); err == nil {
			return nil
		}
		db.logger.Warn().Str("func", "*DB.Initialize").Msg("database handle is not live, reopening")
		_ = db.conn.Close()
		db.conn, db.ext = nil, nil
	}

	conn, err := openSQLite(ctx, db.cfg)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Initialize").Str("path", db.cfg.Path).Msg("error opening database")
		return fmt.Errorf("%w: %w", ErrAccessFailure, err)
	}

	if err := migrations.Migrate(conn.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Initialize").Msg("error applying migrations")
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrAccessFailure, err)
	}

	db.conn, db.ext = conn, conn
	db.logger.Debug().Str("func", "*DB.Initialize").Str("path", db.cfg.Path).Msg("database initialized")
	return nil
}

// Close releases the handle. Calling it on a closed DB is a no-op.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn == nil {
		return nil
	}

	err := db.conn.Close()
	db.conn, db.ext = nil, nil
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAccessFailure, err)
	}
	return nil
}

// Query runs a SELECT and scans every row into dest, a pointer to a slice.
func (db *DB) Query(ctx context.Context, dest any, query string, args ...any) error {
	return db.run(ctx, "*DB.Query", query, func(ext sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, ext, dest, query, args...)
	})
}

// QueryOne runs a SELECT expected to return a single row and scans it into
// dest. No row yields [ErrNotFound].
func (db *DB) QueryOne(ctx context.Context, dest any, query string, args ...any) error {
	return db.run(ctx, "*DB.QueryOne", query, func(ext sqlx.ExtContext) error {
		return sqlx.GetContext(ctx, ext, dest, query, args...)
	})
}

// Execute runs a write statement and returns the number of affected rows.
func (db *DB) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := db.run(ctx, "*DB.Execute", query, func(ext sqlx.ExtContext) error {
		res, err := ext.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// Insert runs an INSERT and returns the id generated for the new row.
func (db *DB) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := db.run(ctx, "*DB.Insert", query, func(ext sqlx.ExtContext) error {
		res, err := ext.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// WithinTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics. fn must
// use the tx-bound *DB it receives; a WithinTx call on that *DB runs fn
// directly in the same transaction.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *DB) error) (err error) {
	if db.tx != nil {
		return fn(ctx, db)
	}

	conn := db.handle()
	if conn == nil {
		return fmt.Errorf("%w: %w", ErrAccessFailure, ErrDBClosed)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.WithinTx").Msg("error beginning transaction")
		return db.wrap(errors.Join(ErrBeginningTransaction, err))
	}

	txDB := &DB{
		cfg:                db.cfg,
		logger:             db.logger,
		errorClassificator: db.errorClassificator,
		maxRetries:         db.maxRetries,
		mu:                 db.mu,
		conn:               conn,
		ext:                tx,
		tx:                 tx,
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ctx, txDB); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Err(rbErr).Str("func", "*DB.WithinTx").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		db.logger.Err(err).Str("func", "*DB.WithinTx").Msg("error committing transaction")
		return db.wrap(errors.Join(ErrCommitingTransaction, err))
	}

	return nil
}

func (db *DB) handle() *sqlx.DB {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn
}

func (db *DB) executor() sqlx.ExtContext {
	if db.tx != nil {
		return db.ext
	}
	if conn := db.handle(); conn != nil {
		return conn
	}
	return nil
}

// run executes op, retrying busy/locked failures outside transactions, and
// wraps the final error with its kind.
func (db *DB) run(ctx context.Context, funcName, query string, op func(ext sqlx.ExtContext) error) error {
	ext := db.executor()
	if ext == nil {
		return fmt.Errorf("%w: %w", ErrAccessFailure, ErrDBClosed)
	}

	attempt := func(ctx context.Context) error {
		err := op(ext)
		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Debug().Str("func", funcName).Err(err).Msg("database busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	}

	var err error
	if db.tx != nil || db.maxRetries == 0 {
		err = op(ext)
	} else {
		err = retry.Do(ctx, retry.WithMaxRetries(db.maxRetries, retry.NewConstant(retryDelay)), attempt)
	}
	if err == nil {
		return nil
	}

	kind := db.errorClassificator.Kind(err)
	if kind != ErrNotFound {
		db.logger.Err(err).Str("func", funcName).Str("query", query).Msg("error executing statement")
	}
	return db.wrap(err)
}

func (db *DB) wrap(err error) error {
	kind := db.errorClassificator.Kind(err)
	if kind == nil {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

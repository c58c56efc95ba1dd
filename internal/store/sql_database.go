package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/migrations"
)

type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// NewConnect opens a connection pool for cfg.Driver ("pgx" or "sqlite3"),
// applies the pool limits and pings the database.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("unsupported database driver")
		return nil, err
	}

	if d.driver == sqliteDialect.driver {
		if err = createLocalDBDirIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database directory")
			return nil, err
		}
	}

	// establish connection
	conn, err := sql.Open(d.driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if d.driver == sqliteDialect.driver {
		// single writer; also keeps :memory: databases on one connection
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", d.driver).Msg("connected to database successfully")

	return &DB{DB: conn, dialect: d, logger: log}, nil
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.dialect.driver
}

// inTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error and committed otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Err(rbErr).Str("func", "*DB.inTx").Msg("rollback failed")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

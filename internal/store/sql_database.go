package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/migrations"
)

// DB is the shared connection pool. It is opened once at startup and handed
// to every repository.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for cfg.Driver and verifies it with a ping.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	_, err := placeholderFor(cfg.Driver)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(cfg.Driver, cfg.ConnectionString())
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	// setup connections
	if cfg.Driver == config.DriverPostgres {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	} else {
		// a single writer avoids SQLITE_BUSY and keeps :memory: databases shared
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return NewDB(conn, cfg.Driver, log), nil
}

// NewDB wraps an already opened pool. The placeholder format falls back to
// "?" for drivers other than pgx.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	placeholder, err := placeholderFor(driver)
	if err != nil {
		placeholder = sq.Question
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		placeholder:        placeholder,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// Builder returns a squirrel statement builder emitting this pool's dialect.
func (db *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// Driver reports the database/sql driver name the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func placeholderFor(driver string) (sq.PlaceholderFormat, error) {
	switch driver {
	case config.DriverPostgres:
		return sq.Dollar, nil
	case config.DriverSQLite, config.DriverSQLitePure:
		return sq.Question, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

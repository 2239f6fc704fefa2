// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"time"
)

// Supported database/sql driver names for [DB.Driver].
const (
	// DriverPostgres selects PostgreSQL through the pgx stdlib driver.
	DriverPostgres = "pgx"

	// DriverSQLite selects SQLite through the cgo mattn/go-sqlite3 driver.
	DriverSQLite = "sqlite3"

	// DriverSQLitePure selects SQLite through the pure-Go modernc.org/sqlite driver.
	DriverSQLitePure = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// brew-review server. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by GET /healthz.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DATABASE_"`
}

// DB holds connection settings for the relational database backend.
//
// The three connection secrets (host, username, password) follow the names
// used by the hosted database deployment: DATABASE_HOST, DATABASE_USERNAME
// and DATABASE_PASSWORD.
type DB struct {
	// Driver is the database/sql driver name, one of [DriverPostgres],
	// [DriverSQLite] or [DriverSQLitePure].
	// Env: DATABASE_DRIVER
	Driver string `env:"DRIVER"`

	// Host is the database host, optionally with a port ("db.example.com:5432").
	// Env: DATABASE_HOST
	Host string `env:"HOST"`

	// Username is the database role used to connect.
	// Env: DATABASE_USERNAME
	Username string `env:"USERNAME"`

	// Password is the secret of Username.
	// Env: DATABASE_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name. Optional for PostgreSQL.
	// Env: DATABASE_NAME
	Name string `env:"NAME"`

	// DSN is a complete connection string. When set it takes precedence over
	// Host, Username, Password and Name. Required for the SQLite drivers,
	// where it is the database file path (or ":memory:").
	// Env: DATABASE_URI
	DSN string `env:"URI"`

	// AutoMigrate applies the embedded schema migrations at startup. It is a
	// pointer so that an explicit false from an earlier source survives the merge.
	// Env: DATABASE_AUTO_MIGRATE
	AutoMigrate *bool `env:"AUTO_MIGRATE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request, database call included.
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ShouldMigrate reports whether startup migrations were requested.
func (db DB) ShouldMigrate() bool {
	return db.AutoMigrate != nil && *db.AutoMigrate
}

// ConnectionString returns the data source name handed to sql.Open.
//
// An explicit DSN is returned unchanged. Otherwise a PostgreSQL URL is
// assembled from Host, Username, Password and Name.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.Username, db.Password),
		Host:   db.Host,
	}
	if db.Name != "" {
		u.Path = "/" + db.Name
	}

	return u.String()
}

// defaults returns the values used for fields no other source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout cannot be negative", ErrInvalidServerConfigs)
	}

	return cfg.Storage.DB.validate()
}

// validate checks that db names a supported driver and carries enough
// connection data for it. PostgreSQL accepts either a DSN or all three
// connection secrets; SQLite needs a DSN.
func (db DB) validate() error {
	switch db.Driver {
	case DriverPostgres:
		if db.DSN != "" {
			return nil
		}
		if db.Host == "" || db.Username == "" || db.Password == "" {
			return fmt.Errorf("%w: database host, username and password are required", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverSQLitePure:
		if db.DSN == "" {
			return fmt.Errorf("%w: database URI is required for %s", ErrInvalidStorageConfigs, db.Driver)
		}
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// validate checks that the final merged [StructuredConfig] can start the
// server: a signing secret is set, the driver is known and a DSN can be
// determined.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("%w: JWT_SECRET is empty", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.Issuer == "" || cfg.Auth.Duration <= 0 {
		return fmt.Errorf("%w: issuer and a positive duration are required", ErrInvalidAuthConfigs)
	}

	if _, err := cfg.Storage.DB.DataSourceName(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.Port <= 0 {
		return fmt.Errorf("%w: no listen address or port", ErrInvalidServerConfigs)
	}

	return nil
}

// DataSourceName returns the connection string for the configured driver.
//
// An explicit DSN is returned as is. Otherwise, for PostgreSQL, a URL is
// built from Host, Port, User, Password, Database and SSLMode. SQLite
// always requires an explicit DSN.
func (db DB) DataSourceName() (string, error) {
	switch db.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDBDriver, db.Driver)
	}

	if db.DSN != "" {
		return db.DSN, nil
	}

	if db.Driver == DriverSQLite {
		return "", fmt.Errorf("%w: DB_DSN is required for sqlite", ErrInvalidStorageConfigs)
	}

	if db.Host == "" || db.Database == "" {
		return "", fmt.Errorf("%w: DB_DSN or DB_HOST and DB_DATABASE are required", ErrInvalidStorageConfigs)
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   db.Host,
		Path:   "/" + db.Database,
	}
	if db.Port > 0 {
		dsn.Host = net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
	}
	if db.User != "" {
		dsn.User = url.UserPassword(db.User, db.Password)
	}
	if db.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return dsn.String(), nil
}

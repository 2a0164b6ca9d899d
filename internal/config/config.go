// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-task-keeper server. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password hashing cost, the
	// ownership switch and the reported version.
	App App `envPrefix:"APP_"`

	// Auth holds the bearer token parameters.
	Auth Auth `envPrefix:"JWT_"`

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds listen address and timeout settings for the HTTP server.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashCost is the bcrypt cost factor used when registering users.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// EnforceTaskOwnership scopes every task operation to the authenticated
	// caller. When false, any authenticated user may act on any task.
	// Env: APP_ENFORCE_TASK_OWNERSHIP
	EnforceTaskOwnership bool `env:"ENFORCE_TASK_OWNERSHIP"`

	// Version is the version string reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the parameters used to sign and verify bearer tokens.
type Auth struct {
	// Secret is the HMAC key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: JWT_SECRET
	Secret string `env:"SECRET"`

	// Issuer is the "iss" claim embedded in every issued token and checked
	// on every authenticated request.
	// Env: JWT_ISSUER
	Issuer string `env:"ISSUER"`

	// Duration specifies how long a token remains valid after issuance.
	// Env: JWT_DURATION
	Duration time.Duration `env:"DURATION"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
//
// Either DSN is given verbatim, or a PostgreSQL DSN is assembled from the
// individual connection parameters (see [DB.DataSourceName]).
type DB struct {
	// Driver selects the backend: "postgres" or "sqlite".
	// Env: DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the complete connection string. Takes precedence over the
	// individual parameters below.
	// Env: DB_DSN
	DSN string `env:"DSN"`

	// Env: DB_USER
	User string `env:"USER"`
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: DB_HOST
	Host string `env:"HOST"`
	// Env: DB_PORT
	Port int `env:"PORT"`
	// Env: DB_DATABASE
	Database string `env:"DATABASE"`
	// Env: DB_SSLMODE
	SSLMode string `env:"SSLMODE"`

	// MaxOpenConns bounds the connection pool, the only admission control
	// of the server.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Takes precedence over Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// Port is used when HTTPAddress is empty; the server then listens on
	// all interfaces.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// ListenAddress returns the address the HTTP server binds to.
func (s Server) ListenAddress() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

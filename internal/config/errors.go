package config

import "errors"

// Validation errors returned when the merged configuration cannot start
// the server.
var (
	// ErrInvalidAuthConfigs indicates missing or invalid token settings
	// (for example, an empty signing secret).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrUnsupportedDBDriver indicates a DB_DRIVER other than postgres or sqlite.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidStorageConfigs indicates that no DSN could be determined
	// for the configured driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates an unusable client configuration.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)

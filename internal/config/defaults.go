package config

import "time"

// Built-in defaults, applied before every other source.
const (
	DefaultPort             = 8000
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultDBDriver         = DriverPostgres
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "disable"
	DefaultDBMaxOpenConns   = 10
	DefaultTokenIssuer      = "go-task-keeper"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 10
	DefaultVersion          = "dev"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
		},
		Auth: Auth{
			Issuer:   DefaultTokenIssuer,
			Duration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDBDriver,
				Port:         DefaultDBPort,
				SSLMode:      DefaultDBSSLMode,
				MaxOpenConns: DefaultDBMaxOpenConns,
			},
		},
		Server: Server{
			Port:            DefaultPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

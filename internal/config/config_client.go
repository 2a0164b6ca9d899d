package config

import (
	"fmt"
	"net/url"
	"time"
)

// ClientConfig holds the taskctl settings that can be preset through the
// environment. Command-line flags override them.
type ClientConfig struct {
	// ServerURL is the base URL of the go-task-keeper API.
	// Env: TASKCTL_SERVER
	ServerURL string `env:"SERVER" envDefault:"http://localhost:8000"`

	// Token is the bearer token sent with task requests.
	// Env: TASKCTL_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: TASKCTL_TIMEOUT
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// Verbose enables debug logging to stderr.
	// Env: TASKCTL_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// clientEnvPrefix is prepended to every [ClientConfig] env tag.
const clientEnvPrefix = "TASKCTL_"

// GetClientConfig loads the client configuration from TASKCTL_* environment
// variables, falling back to the envDefault values.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks that ServerURL is an absolute http(s) URL and the timeout
// is not negative.
func (cfg *ClientConfig) Validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server URL %q must be an absolute http(s) URL", ErrInvalidClientConfigs, cfg.ServerURL)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return nil
}

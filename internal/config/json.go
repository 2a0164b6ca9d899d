package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file. Durations are written as strings ("30s", "1h").
type StructuredJSONConfig struct {
	App struct {
		PasswordHashCost     int    `json:"password_hash_cost"`
		EnforceTaskOwnership bool   `json:"enforce_task_ownership"`
		Version              string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		Secret   string   `json:"secret"`
		Issuer   string   `json:"issuer"`
		Duration Duration `json:"duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			User         string `json:"user"`
			Password     string `json:"password"`
			Host         string `json:"host"`
			Port         int    `json:"port"`
			Database     string `json:"database"`
			SSLMode      string `json:"ssl_mode"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		Port            int      `json:"port"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		App: App{
			PasswordHashCost:     jsonCfg.App.PasswordHashCost,
			EnforceTaskOwnership: jsonCfg.App.EnforceTaskOwnership,
			Version:              jsonCfg.App.Version,
		},
		Auth: Auth{
			Secret:   jsonCfg.Auth.Secret,
			Issuer:   jsonCfg.Auth.Issuer,
			Duration: time.Duration(jsonCfg.Auth.Duration),
		},
		Storage: Storage{
			DB: DB{
				Driver:       db.Driver,
				DSN:          db.DSN,
				User:         db.User,
				Password:     db.Password,
				Host:         db.Host,
				Port:         db.Port,
				Database:     db.Database,
				SSLMode:      db.SSLMode,
				MaxOpenConns: db.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			Port:            jsonCfg.Server.Port,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" and "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from
// a `.env` file), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (logging, analytics).
package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Env var names use the TITANIC_ prefix and dot notation for nesting:
//
//	TITANIC_SERVER.PORT         -> server.port  -> Config.Server.Port
//	TITANIC_DATA.SOURCE         -> data.source  -> Config.Data.Source
//	TITANIC_DATA.CSV_PATH       -> data.csv_path
//	TITANIC_ANALYTICS.HISTOGRAM_BUCKETS -> analytics.histogram_buckets

// Backend kinds selectable via TITANIC_DATA.SOURCE.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// DefaultHistogramBuckets is the fare-histogram bucket count used when
// TITANIC_ANALYTICS.HISTOGRAM_BUCKETS is not set.
const DefaultHistogramBuckets = 10

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are used by go-playground/validator to
// enforce that the config is present and well-formed.
//
// Logging and Analytics are optional blocks; defaults are injected at
// load time when they are missing.
type Config struct {
	Primary   Primary         `koanf:"primary" validate:"required"`
	Server    ServerConfig    `koanf:"server" validate:"required"`
	Data      DataConfig      `koanf:"data" validate:"required"`
	Logging   LoggingConfig   `koanf:"logging"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DataConfig selects which backend serves passenger data and where it
// lives. The selection is resolved once at startup and is immutable for
// the life of the process.
type DataConfig struct {
	// Source is the backend kind: "csv" or "sqlite".
	Source string `koanf:"source" validate:"required,oneof=csv sqlite"`

	// CSVPath is the path to the delimited-text dataset. Only consulted
	// when Source is "csv".
	CSVPath string `koanf:"csv_path"`

	// SQLitePath is the path to the embedded-store database file. Only
	// consulted when Source is "sqlite".
	SQLitePath string `koanf:"sqlite_path"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format for logs ("json" or "console").
	Format string `koanf:"format"`
}

// AnalyticsConfig tunes the derived analytic views.
type AnalyticsConfig struct {
	// HistogramBuckets is the default bucket count for the fare histogram.
	// Requests may override it per call within the same bounds.
	HistogramBuckets int `koanf:"histogram_buckets" validate:"omitempty,min=1,max=100"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config structs, applies defaults, validates, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix TITANIC_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Injects defaults for optional blocks
//   - Validates required config blocks/fields, including the
//     backend-specific location for the selected data source
//
// Invalid or missing configuration is a startup error, never a
// per-request error.
func Load() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider("TITANIC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TITANIC_"))
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	// oneof covers the selector; the location for the selected backend
	// still has to exist.
	switch cfg.Data.Source {
	case SourceSQLite:
		if cfg.Data.SQLitePath == "" {
			return nil, errors.New("config: data.sqlite_path is required when data.source is sqlite")
		}
	case SourceCSV:
		if cfg.Data.CSVPath == "" {
			return nil, errors.New("config: data.csv_path is required when data.source is csv")
		}
	}

	return cfg, nil
}

// applyDefaults fills optional blocks that were not provided.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		if cfg.Primary.Env == "local" {
			cfg.Logging.Format = "console"
		} else {
			cfg.Logging.Format = "json"
		}
	}
	if cfg.Analytics.HistogramBuckets == 0 {
		cfg.Analytics.HistogramBuckets = DefaultHistogramBuckets
	}
	if cfg.Data.Source == SourceCSV && cfg.Data.CSVPath == "" {
		cfg.Data.CSVPath = "data/titanic.csv"
	}
}

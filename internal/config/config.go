// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers (see LoadWithKoanf):
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Supported storage drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverSQLite   = "sqlite3"
	DriverLibSQL   = "libsql"
	DriverPostgres = "pgx"
)

// DatabaseConfig holds storage settings.
//
// Environment Variables:
//   - DB_DRIVER: duckdb, sqlite3, libsql, pgx (default: duckdb)
//   - DB_DSN: connection string for sqlite3/libsql/pgx (ignored for duckdb)
//   - DUCKDB_PATH: DuckDB database file (default: /data/radiology.duckdb)
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
//   - DB_CREATE_SCHEMA: create the radiology tables if missing (default: true)
//   - DB_SEED_DEMO_DATA: insert a small demo dataset into an empty database
type DatabaseConfig struct {
	Driver                 string        `koanf:"driver"`
	DSN                    string        `koanf:"dsn"`
	Path                   string        `koanf:"path"`
	MaxMemory              string        `koanf:"max_memory"`
	Threads                int           `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool          `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
	MaxOpenConns           int           `koanf:"max_open_conns"`
	QueryTimeout           time.Duration `koanf:"query_timeout"`
	CreateSchema           bool          `koanf:"create_schema"`
	SeedDemoData           bool          `koanf:"seed_demo_data"`

	// Circuit breaker around query execution
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`   // Result cache lifetime (0 disables caching)
	Environment     string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// SecurityConfig holds request-level protection settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production, console for development.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources with the following precedence
// (highest to lowest):
//  1. Environment variables (including a local .env file)
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

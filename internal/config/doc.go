// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package config provides centralized configuration management for the
radiology reports service.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH or config.yaml), then environment variables. A local
.env file is read into the environment before the environment layer is
applied; variables already present in the process take precedence.

# Environment Variables

Database (DatabaseConfig):
  - DB_DRIVER: duckdb, sqlite3, libsql, pgx (default: duckdb)
  - DB_DSN: connection string for non-DuckDB drivers
  - DUCKDB_PATH: DuckDB file path (default: /data/radiology.duckdb)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: DuckDB tuning
  - DB_MAX_OPEN_CONNS, DB_QUERY_TIMEOUT: pool and per-query limits
  - DB_CREATE_SCHEMA, DB_SEED_DEMO_DATA: bootstrap options
  - DB_BREAKER_MAX_FAILURES, DB_BREAKER_TIMEOUT: circuit breaker tuning

HTTP Server (ServerConfig):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging, production

Security (SecurityConfig):
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list of allowed origins

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

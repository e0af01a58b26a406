// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package main is the entry point for the radiology reports server.

The server answers the Data Analysis and Report Generator screens of a
radiology information system: aggregate record counts grouped by patient,
test type and date, patient reports by diagnosis and test date, and the
person and diagnosis choice lists that feed their select fields.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("radreports")
	├── DataSupervisor ("data-layer")
	│   └── DB health monitor (pings the store, exports radiology_db_up)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router, /api/v1)

A database that stays unreachable restarts only the health monitor; the HTTP
server keeps serving and reports the outage through /api/v1/health/ready.

Component initialization order:

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog, with an slog bridge for the supervisor
 3. Database: DuckDB by default; SQLite, libsql and PostgreSQL are selectable
 4. HTTP: handler with an optional result cache, chi router, Swagger UI
 5. Supervisor tree: started with a context cancelled on SIGINT or SIGTERM

# Configuration

Key environment variables:

	DB_DRIVER           duckdb | sqlite3 | libsql | pgx (default: duckdb)
	DB_DSN              connection string for non-DuckDB drivers
	DUCKDB_PATH         DuckDB database file (default: /data/radiology.duckdb)
	DB_CREATE_SCHEMA    create the bootstrap tables (default: true)
	DB_SEED_DEMO_DATA   load the demo dataset on startup (default: false)
	HTTP_PORT           listen port (default: 8080)
	CACHE_TTL           opt-in result cache lifetime, 0 disables (default: 0)
	LOG_LEVEL           trace | debug | info | warn | error (default: info)
	LOG_FORMAT          json | console (default: json)

A .env file in the working directory is loaded before the environment is read.

# Graceful Shutdown

On SIGINT or SIGTERM the root context is cancelled, the HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, the result cache is stopped and
the database connection is closed. Services that fail to stop in time are
logged by name.
*/
package main

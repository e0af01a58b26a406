// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

// Registered database/sql drivers. The names match the config.Driver* constants.
import (
	_ "github.com/duckdb/duckdb-go/v2"                   // "duckdb"
	_ "github.com/jackc/pgx/v5/stdlib"                   // "pgx"
	_ "github.com/mattn/go-sqlite3"                      // "sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // "libsql"
)

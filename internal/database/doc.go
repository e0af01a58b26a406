// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package database provides data access for the radiology reports service.
//
// # Overview
//
// This package sits between the HTTP layer and the radiology database. SQL
// text is assembled by the query subpackage; this package executes it,
// scans the rows and shapes them into models.ResultTable or typed slices.
//
// # Architecture
//
//   - database.go: connection lifecycle, pool configuration, timeouts
//   - drivers.go: database/sql driver registration
//   - schema.go: bootstrap tables and indexes
//   - seed.go: dataset loading and the demo dataset
//   - breaker.go: circuit breaker and query metrics around every query
//   - analysis.go: the dynamic aggregate count (Data Analysis screen)
//   - persons.go: persons by role, person and diagnosis choices
//   - report.go: patient report by diagnosis and date range
//
// # Drivers
//
// The driver is selected by config.DatabaseConfig.Driver:
//   - duckdb (default): github.com/duckdb/duckdb-go/v2, opened from Path
//   - sqlite3: github.com/mattn/go-sqlite3
//   - libsql: github.com/tursodatabase/libsql-client-go
//   - pgx: github.com/jackc/pgx/v5/stdlib
//
// The query.Dialect for the driver decides date-part extraction and the
// placeholder format.
//
// # Error Handling
//
// Driver errors are wrapped with %w and returned as-is; nothing is retried.
// When the circuit breaker is open, calls fail fast with ErrCircuitOpen.
//
// # Usage Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	table, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{
//	    IncludeSubject:  true,
//	    DateGranularity: query.GranularityMonth,
//	})
//	// table.Header: ["subject_id", "year", "month", "num_rows"]
//
// # Thread Safety
//
// DB is safe for concurrent use. The pool, the breaker and the metrics are
// all goroutine-safe.
package database

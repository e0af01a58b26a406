// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package testinfra provides container-backed infrastructure for integration tests.
//
// The in-memory DuckDB covers the default driver in ordinary unit tests. The
// PostgreSQL driver needs a real server, which this package starts with
// testcontainers-go:
//
//	func TestSomethingOnPostgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, pg.Container)
//
//	    db, err := database.New(&config.DatabaseConfig{
//	        Driver:       config.DriverPostgres,
//	        DSN:          pg.DSN,
//	        CreateSchema: true,
//	    })
//	    // ...
//	}
//
// All files carry the integration build tag:
//
//	go test -tags integration ./...
//
// Tests are skipped when Docker is unavailable or -short is set. The first run
// pulls the PostgreSQL image.
package testinfra

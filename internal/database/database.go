// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/radreports/internal/config"
	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/logging"
)

// defaultQueryTimeout applies when neither the caller nor the config sets a deadline.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the SQL connection pool and provides the radiology data access methods
type DB struct {
	conn    *sqlx.DB
	cfg     *config.DatabaseConfig
	driver  string
	dialect query.Dialect
	breaker *gobreaker.CircuitBreaker[any]
}

// New opens the configured database, configures the pool and optionally
// creates the schema and loads the demo dataset.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverDuckDB
	}

	dialect, err := query.DialectFor(driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dataSourceName(driver, cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		driver:  driver,
		dialect: dialect,
		breaker: newBreaker(cfg),
	}

	db.configureConnectionPool()

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if cfg.CreateSchema {
		if err := db.createSchema(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	if cfg.SeedDemoData {
		if err := db.SeedDemoData(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	logging.Info().
		Str("driver", driver).
		Str("dialect", dialect.Name()).
		Bool("schema", cfg.CreateSchema).
		Msg("Database opened")

	return db, nil
}

// dataSourceName builds the connection string for the driver. DuckDB is
// opened from Path with tuning options; every other driver uses DSN as given.
func dataSourceName(driver string, cfg *config.DatabaseConfig) (string, error) {
	if driver != config.DriverDuckDB {
		if cfg.DSN == "" {
			return "", fmt.Errorf("database DSN is required for driver %s", driver)
		}
		return cfg.DSN, nil
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	// Ensure parent directory exists for database file
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	return fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%t",
		path, threads, maxMemory, cfg.PreserveInsertionOrder), nil
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}

	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(min(2, maxOpen))
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Close flushes the DuckDB WAL and closes the pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if db.driver == config.DriverDuckDB {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Dialect returns the SQL dialect of the open driver.
func (db *DB) Dialect() query.Dialect {
	return db.dialect
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// ensureContext applies the configured query timeout when ctx has no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	return ctx, func() {}
}

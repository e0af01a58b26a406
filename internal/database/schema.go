// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"
)

// tableCreationQueries is the bootstrap schema. The statements use only types
// and constraints accepted by DuckDB, SQLite and PostgreSQL alike.
var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		person_id  INTEGER PRIMARY KEY,
		first_name VARCHAR(24),
		last_name  VARCHAR(24),
		address    VARCHAR(128),
		email      VARCHAR(128) UNIQUE,
		phone      VARCHAR(10)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_name       VARCHAR(24) PRIMARY KEY,
		password        VARCHAR(24),
		user_class      CHAR(1) CHECK (user_class IN ('a', 'p', 'd', 'r')),
		person_id       INTEGER REFERENCES persons(person_id),
		date_registered DATE
	)`,
	`CREATE TABLE IF NOT EXISTS radiology_record (
		record_id        INTEGER PRIMARY KEY,
		patient_id       INTEGER REFERENCES persons(person_id),
		doctor_id        INTEGER REFERENCES persons(person_id),
		radiologist_id   INTEGER REFERENCES persons(person_id),
		test_type        VARCHAR(24),
		prescribing_date DATE,
		test_date        DATE,
		diagnosis        VARCHAR(128),
		description      VARCHAR(1024)
	)`,
	`CREATE TABLE IF NOT EXISTS pacs_images (
		image_id  INTEGER PRIMARY KEY,
		record_id INTEGER REFERENCES radiology_record(record_id)
	)`,
}

var indexCreationQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_users_class ON users(user_class)`,
	`CREATE INDEX IF NOT EXISTS idx_record_test_date ON radiology_record(test_date)`,
	`CREATE INDEX IF NOT EXISTS idx_record_diagnosis ON radiology_record(diagnosis)`,
	`CREATE INDEX IF NOT EXISTS idx_images_record ON pacs_images(record_id)`,
}

// createSchema creates the bootstrap tables and indexes if they do not exist.
func (db *DB) createSchema(ctx context.Context) error {
	for _, q := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, q := range indexCreationQueries {
		if _, err := db.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

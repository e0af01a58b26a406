// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package query

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// DatePart is a calendar component extracted from a date column.
type DatePart string

const (
	PartYear  DatePart = "year"
	PartMonth DatePart = "month"
	PartDay   DatePart = "day"
)

// Dialect captures the SQL differences between the supported engines.
type Dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	datePart    func(part DatePart, column string) string
	dateArg     func(t time.Time) any
}

var (
	// DuckDB uses the year()/month()/day() scalar functions.
	DuckDB = Dialect{
		name:        "duckdb",
		placeholder: sq.Question,
		datePart: func(part DatePart, column string) string {
			return fmt.Sprintf("%s(%s)", part, column)
		},
		dateArg: func(t time.Time) any { return t },
	}

	// SQLite stores dates as ISO-8601 text, so parts come from strftime and
	// date arguments are bound as YYYY-MM-DD strings to compare lexically.
	SQLite = Dialect{
		name:        "sqlite",
		placeholder: sq.Question,
		datePart: func(part DatePart, column string) string {
			return fmt.Sprintf("CAST(strftime('%s', %s) AS INTEGER)", sqliteFormat[part], column)
		},
		dateArg: func(t time.Time) any { return t.Format(time.DateOnly) },
	}

	// Postgres uses EXTRACT and $n placeholders.
	Postgres = Dialect{
		name:        "postgres",
		placeholder: sq.Dollar,
		datePart: func(part DatePart, column string) string {
			return fmt.Sprintf("CAST(EXTRACT(%s FROM %s) AS INTEGER)", part, column)
		},
		dateArg: func(t time.Time) any { return t },
	}
)

var sqliteFormat = map[DatePart]string{
	PartYear:  "%Y",
	PartMonth: "%m",
	PartDay:   "%d",
}

// DialectFor returns the dialect for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "duckdb":
		return DuckDB, nil
	case "sqlite3", "libsql":
		return SQLite, nil
	case "pgx", "postgres":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("no SQL dialect for driver %q", driver)
	}
}

// Name returns the dialect name for logging.
func (d Dialect) Name() string {
	return d.name
}

// DatePart returns the expression extracting part from column.
func (d Dialect) DatePart(part DatePart, column string) string {
	return d.datePart(part, column)
}

// DateArg encodes a date for binding against a date column.
func (d Dialect) DateArg(t time.Time) any {
	return d.dateArg(t)
}

// Select starts a squirrel SELECT using the dialect's placeholder format.
func (d Dialect) Select(columns ...string) sq.SelectBuilder {
	return sq.Select(columns...).PlaceholderFormat(d.placeholder)
}

// Insert starts an INSERT with the dialect's placeholder format.
func (d Dialect) Insert(table string) sq.InsertBuilder {
	return sq.Insert(table).PlaceholderFormat(d.placeholder)
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package query builds the SQL text for the radiology report screens.
//
// It has no database dependency: every function returns the query string and
// its bound arguments, assembled with Masterminds/squirrel, and the database
// package executes them.
//
// # Data Analysis (aggregate) queries
//
// A SelectionRequest names the dimensions to group image counts by. The
// resulting GroupingPlan always orders its columns subject, category, year,
// month, day, and date granularity nests (day implies month implies year):
//
//	plan := query.NewGroupingPlan(query.SelectionRequest{
//	    IncludeSubject:  true,
//	    DateGranularity: query.GranularityMonth,
//	}, query.DuckDB)
//	sql, args, err := query.BuildAggregateQuery(plan, query.DuckDB)
//	// SELECT r.patient_id AS subject_id, year(r.test_date) AS year,
//	//        month(r.test_date) AS month, count(*) AS num_rows
//	// FROM radiology_record r JOIN pacs_images i ON r.record_id = i.record_id
//	// GROUP BY subject_id, year, month ORDER BY subject_id, year, month
//
// An empty plan produces a single total count with no GROUP BY.
//
// # Filter helpers
//
// PersonsByRole, AllPersons, DistinctDiagnoses and PatientReport cover the
// select-field and report-generator lookups. PatientReport treats the
// diagnosis "all" as no filter and applies inclusive start/end dates.
//
// # Dialects
//
// Date-part extraction, placeholder style and date argument encoding differ
// between DuckDB, SQLite/libSQL and PostgreSQL; DialectFor maps a driver name
// to the matching Dialect.
package query

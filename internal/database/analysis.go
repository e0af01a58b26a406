// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/logging"
	"github.com/tomtom215/radreports/internal/models"
)

// SelectDataAnalysis runs the aggregate image count for the requested
// dimensions and returns it with the header row first.
//
// With no dimension selected the query has no GROUP BY and the table holds a
// single row with the total count. Execution errors are returned wrapped with
// %w and are never retried.
func (db *DB) SelectDataAnalysis(ctx context.Context, req query.SelectionRequest) (*models.ResultTable, error) {
	plan := query.NewGroupingPlan(req, db.dialect)

	sqlStr, args, err := query.BuildAggregateQuery(plan, db.dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to build data analysis query: %w", err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	logging.Ctx(ctx).Debug().
		Strs("dimensions", plan.Labels()).
		Str("sql", sqlStr).
		Msg("Running data analysis query")

	table, err := execute(db, "data_analysis", func() (*models.ResultTable, error) {
		return db.queryTable(ctx, plan.Header(), sqlStr, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("data analysis query failed: %w", err)
	}
	return table, nil
}

// queryTable executes sqlStr and collects every row under header.
func (db *DB) queryTable(ctx context.Context, header []string, sqlStr string, args ...any) (*models.ResultTable, error) {
	rows, err := db.conn.QueryxContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	table := models.NewResultTable(header)
	for rows.Next() {
		cells, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range cells {
			cells[i] = normalizeValue(v)
		}
		if err := table.AddRow(cells); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// normalizeValue maps driver-specific scalar types onto the small set
// ResultTable documents. DuckDB returns INTEGER as int32 and SQLite returns
// text as []byte.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n) //nolint:gosec // counts never exceed int64
	case float32:
		return float64(n)
	case []byte:
		return string(n)
	default:
		return v
	}
}

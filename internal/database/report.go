// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

// SelectReportRows returns the patients matching the report filter, one row
// per matching record, ordered by test date.
func (db *DB) SelectReportRows(ctx context.Context, f query.ReportFilter) ([]models.ReportRow, error) {
	sqlStr, args, err := query.PatientReport(db.dialect, f)
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := execute(db, "patient_report", func() ([]models.ReportRow, error) {
		out := make([]models.ReportRow, 0)
		if err := db.conn.SelectContext(ctx, &out, sqlStr, args...); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	return rows, nil
}

// SelectReport runs the patient report and returns it as a table with the
// header ["ID","Last Name","First Name","Phone","Diagnosis Date"].
func (db *DB) SelectReport(ctx context.Context, f query.ReportFilter) (*models.ResultTable, error) {
	rows, err := db.SelectReportRows(ctx, f)
	if err != nil {
		return nil, err
	}

	table := models.NewResultTable(append([]string(nil), models.ReportHeader...))
	for _, r := range rows {
		if err := table.AddRow(r.Cells()); err != nil {
			return nil, err
		}
	}
	return table, nil
}

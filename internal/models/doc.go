// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package models defines the data structures shared by the database and API
layers.

Key Components:

  - ResultTable: header-first tabular result of the aggregate and report queries
  - Person, Choice: rows and select-field options for the person helpers
  - ReportRow, Date: patient report rows, with a driver-agnostic date scanner
  - APIResponse, APIError, Metadata: the JSON envelope of every endpoint

Example:

	table := models.NewResultTable([]string{"category", "num_rows"})
	if err := table.AddRow([]any{"MRI", int64(12)}); err != nil {
	    return err
	}
	rows := table.Table() // [["category","num_rows"],["MRI",12]]
*/
package models

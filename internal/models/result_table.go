// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package models

import (
	"errors"
	"fmt"
)

// ErrRowWidth is returned when a row does not match the table header.
var ErrRowWidth = errors.New("row width does not match header")

// ResultTable is a header-first tabular result.
//
// Every row has exactly len(Header) cells. Cells hold driver values normalized
// to string, int64, float64, bool, time.Time or nil.
type ResultTable struct {
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

// NewResultTable creates an empty table with the given header.
func NewResultTable(header []string) *ResultTable {
	return &ResultTable{
		Header: header,
		Rows:   make([][]any, 0),
	}
}

// AddRow appends a row after checking its width against the header.
func (t *ResultTable) AddRow(row []any) error {
	if len(row) != len(t.Header) {
		return fmt.Errorf("%w: got %d cells, header has %d", ErrRowWidth, len(row), len(t.Header))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of data rows, not counting the header.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}

// Table returns the header followed by the data rows as one list.
func (t *ResultTable) Table() [][]any {
	out := make([][]any, 0, len(t.Rows)+1)

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	out = append(out, header)

	return append(out, t.Rows...)
}

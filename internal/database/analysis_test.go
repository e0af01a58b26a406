// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

func assertTable(t *testing.T, table *models.ResultTable, header []string, rows [][]any) {
	t.Helper()

	if table == nil {
		t.Fatal("table is nil")
	}
	if !reflect.DeepEqual(table.Header, header) {
		t.Errorf("Header = %v, want %v", table.Header, header)
	}
	if len(table.Rows) != len(rows) {
		t.Fatalf("got %d rows, want %d: %v", len(table.Rows), len(rows), table.Rows)
	}
	for i := range rows {
		if !reflect.DeepEqual(table.Rows[i], rows[i]) {
			t.Errorf("row %d = %#v, want %#v", i, table.Rows[i], rows[i])
		}
	}
}

func TestSelectDataAnalysis_SubjectByMonth(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ds := fixtureDataset()
	ds.Records = ds.Records[:3]
	ds.Images = ds.Images[:3]
	if err := db.Load(ctx, ds); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	table, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{
		IncludeSubject:  true,
		DateGranularity: query.GranularityMonth,
	})
	if err != nil {
		t.Fatalf("SelectDataAnalysis() error = %v", err)
	}

	want := [][]any{
		{"subject_id", "year", "month", "num_rows"},
		{int64(3), int64(2023), int64(5), int64(3)},
	}
	if got := table.Table(); !reflect.DeepEqual(got, want) {
		t.Errorf("Table() = %v, want %v", got, want)
	}
}

func TestSelectDataAnalysis(t *testing.T) {
	db := setupFixtureDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    query.SelectionRequest
		header []string
		rows   [][]any
	}{
		{
			name:   "no dimensions counts every image",
			req:    query.SelectionRequest{},
			header: []string{"num_rows"},
			rows:   [][]any{{int64(5)}},
		},
		{
			name:   "unknown granularity is treated as none",
			req:    query.SelectionRequest{DateGranularity: "week"},
			header: []string{"num_rows"},
			rows:   [][]any{{int64(5)}},
		},
		{
			name:   "category",
			req:    query.SelectionRequest{IncludeCategory: true},
			header: []string{"category", "num_rows"},
			rows: [][]any{
				{"CT", int64(1)},
				{"MRI", int64(2)},
				{"X-Ray", int64(2)},
			},
		},
		{
			name:   "year",
			req:    query.SelectionRequest{DateGranularity: query.GranularityYear},
			header: []string{"year", "num_rows"},
			rows: [][]any{
				{int64(2023), int64(3)},
				{int64(2024), int64(2)},
			},
		},
		{
			name:   "subject and category",
			req:    query.SelectionRequest{IncludeSubject: true, IncludeCategory: true},
			header: []string{"subject_id", "category", "num_rows"},
			rows: [][]any{
				{int64(3), "CT", int64(1)},
				{int64(3), "MRI", int64(2)},
				{int64(4), "X-Ray", int64(2)},
			},
		},
		{
			name: "everything by day",
			req: query.SelectionRequest{
				IncludeSubject:  true,
				IncludeCategory: true,
				DateGranularity: query.GranularityDay,
			},
			header: []string{"subject_id", "category", "year", "month", "day", "num_rows"},
			rows: [][]any{
				{int64(3), "CT", int64(2023), int64(5), int64(30), int64(1)},
				{int64(3), "MRI", int64(2023), int64(5), int64(2), int64(1)},
				{int64(3), "MRI", int64(2023), int64(5), int64(17), int64(1)},
				{int64(4), "X-Ray", int64(2024), int64(1), int64(15), int64(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := db.SelectDataAnalysis(ctx, tt.req)
			if err != nil {
				t.Fatalf("SelectDataAnalysis() error = %v", err)
			}
			assertTable(t, table, tt.header, tt.rows)
		})
	}
}

func TestSelectDataAnalysis_HeaderMatchesRowWidth(t *testing.T) {
	db := setupFixtureDB(t)
	ctx := context.Background()

	granularities := []query.DateGranularity{
		query.GranularityNone, query.GranularityYear, query.GranularityMonth, query.GranularityDay,
	}

	for _, subject := range []bool{false, true} {
		for _, category := range []bool{false, true} {
			for _, g := range granularities {
				req := query.SelectionRequest{IncludeSubject: subject, IncludeCategory: category, DateGranularity: g}
				table, err := db.SelectDataAnalysis(ctx, req)
				if err != nil {
					t.Fatalf("%+v: SelectDataAnalysis() error = %v", req, err)
				}

				var total int64
				for _, row := range table.Rows {
					if len(row) != len(table.Header) {
						t.Errorf("%+v: row width %d != header width %d", req, len(row), len(table.Header))
					}
					total += row[len(row)-1].(int64)
				}
				if total != 5 {
					t.Errorf("%+v: counts sum to %d, want 5", req, total)
				}
			}
		}
	}
}

func TestSelectDataAnalysis_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	total, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{})
	if err != nil {
		t.Fatalf("SelectDataAnalysis() error = %v", err)
	}
	assertTable(t, total, []string{"num_rows"}, [][]any{{int64(0)}})

	grouped, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{IncludeCategory: true})
	if err != nil {
		t.Fatalf("SelectDataAnalysis() error = %v", err)
	}
	assertTable(t, grouped, []string{"category", "num_rows"}, [][]any{})
}

func TestSelectDataAnalysis_PropagatesQueryError(t *testing.T) {
	db := setupFixtureDB(t)
	ctx := context.Background()

	if _, err := db.Conn().ExecContext(ctx, "DROP TABLE pacs_images"); err != nil {
		t.Fatalf("DROP TABLE error = %v", err)
	}

	table, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{IncludeSubject: true})
	if err == nil {
		t.Fatal("SelectDataAnalysis() expected error for missing table")
	}
	if table != nil {
		t.Errorf("SelectDataAnalysis() returned a table alongside the error: %v", table)
	}
	if errors.Is(err, ErrCircuitOpen) {
		t.Errorf("first failure should be the driver error, got %v", err)
	}
}

func TestSelectDataAnalysis_CanceledContext(t *testing.T) {
	db := setupFixtureDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.SelectDataAnalysis(ctx, query.SelectionRequest{}); !errors.Is(err, context.Canceled) {
		t.Errorf("SelectDataAnalysis() error = %v, want context.Canceled", err)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want any
	}{
		{int32(7), int64(7)},
		{int16(7), int64(7)},
		{int8(7), int64(7)},
		{uint32(7), int64(7)},
		{uint64(7), int64(7)},
		{int(7), int64(7)},
		{int64(7), int64(7)},
		{float32(1.5), float64(1.5)},
		{[]byte("MRI"), "MRI"},
		{"CT", "CT"},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := normalizeValue(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("normalizeValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

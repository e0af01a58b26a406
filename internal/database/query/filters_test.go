// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package query

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"d", RoleDoctor, false},
		{"doctor", RoleDoctor, false},
		{"R", RoleRadiologist, false},
		{"radiologist", RoleRadiologist, false},
		{"p", RolePatient, false},
		{" Patient ", RolePatient, false},
		{"a", "", true},
		{"admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ParseRole(%q) error = %v, want ErrInvalidRole", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	if RoleDoctor.String() != "doctor" || RoleRadiologist.String() != "radiologist" || RolePatient.String() != "patient" {
		t.Errorf("unexpected role names: %s %s %s", RoleDoctor, RoleRadiologist, RolePatient)
	}
}

func TestPersonsByRole(t *testing.T) {
	t.Parallel()

	sql, args, err := PersonsByRole(DuckDB, RoleRadiologist)
	if err != nil {
		t.Fatalf("PersonsByRole() error = %v", err)
	}

	want := "SELECT DISTINCT p.person_id, COALESCE(p.first_name, '') AS first_name, COALESCE(p.last_name, '') AS last_name, p.phone FROM persons p " +
		"JOIN users u ON u.person_id = p.person_id WHERE u.user_class = ? ORDER BY p.person_id"
	if sql != want {
		t.Errorf("PersonsByRole() =\n  %s\nwant\n  %s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"r"}) {
		t.Errorf("PersonsByRole() args = %v, want [r]", args)
	}
}

func TestPersonsByRole_PostgresPlaceholders(t *testing.T) {
	t.Parallel()

	sql, _, err := PersonsByRole(Postgres, RolePatient)
	if err != nil {
		t.Fatalf("PersonsByRole() error = %v", err)
	}
	want := "SELECT DISTINCT p.person_id, COALESCE(p.first_name, '') AS first_name, COALESCE(p.last_name, '') AS last_name, p.phone FROM persons p " +
		"JOIN users u ON u.person_id = p.person_id WHERE u.user_class = $1 ORDER BY p.person_id"
	if sql != want {
		t.Errorf("PersonsByRole(Postgres) =\n  %s\nwant\n  %s", sql, want)
	}
}

func TestAllPersons(t *testing.T) {
	t.Parallel()

	sql, args, err := AllPersons(SQLite)
	if err != nil {
		t.Fatalf("AllPersons() error = %v", err)
	}
	want := "SELECT p.person_id, COALESCE(p.first_name, '') AS first_name, COALESCE(p.last_name, '') AS last_name, p.phone FROM persons p ORDER BY p.person_id"
	if sql != want {
		t.Errorf("AllPersons() = %s, want %s", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("AllPersons() args = %v, want none", args)
	}
}

func TestDistinctDiagnoses(t *testing.T) {
	t.Parallel()

	sql, _, err := DistinctDiagnoses(DuckDB)
	if err != nil {
		t.Fatalf("DistinctDiagnoses() error = %v", err)
	}
	want := "SELECT DISTINCT diagnosis FROM radiology_record WHERE diagnosis IS NOT NULL ORDER BY diagnosis"
	if sql != want {
		t.Errorf("DistinctDiagnoses() = %s, want %s", sql, want)
	}
}

func TestPatientReport(t *testing.T) {
	t.Parallel()

	const base = "SELECT p.person_id, COALESCE(p.last_name, '') AS last_name, COALESCE(p.first_name, '') AS first_name, p.phone, r.test_date FROM persons p " +
		"JOIN radiology_record r ON r.patient_id = p.person_id"
	const order = " ORDER BY r.test_date, p.person_id"

	start := time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC)
	dayAfterEnd := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	startDay := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dialect  Dialect
		filter   ReportFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "all diagnoses, no dates",
			dialect:  DuckDB,
			filter:   ReportFilter{Diagnosis: AllDiagnoses},
			wantSQL:  base + order,
			wantArgs: nil,
		},
		{
			name:     "empty diagnosis behaves like all",
			dialect:  DuckDB,
			filter:   ReportFilter{},
			wantSQL:  base + order,
			wantArgs: nil,
		},
		{
			name:     "diagnosis only",
			dialect:  DuckDB,
			filter:   ReportFilter{Diagnosis: "fracture"},
			wantSQL:  base + " WHERE r.diagnosis = ?" + order,
			wantArgs: []any{"fracture"},
		},
		{
			name:     "start only truncates to day",
			dialect:  DuckDB,
			filter:   ReportFilter{Diagnosis: AllDiagnoses, StartDate: &start},
			wantSQL:  base + " WHERE r.test_date >= ?" + order,
			wantArgs: []any{startDay},
		},
		{
			name:     "end only covers the whole end day",
			dialect:  DuckDB,
			filter:   ReportFilter{Diagnosis: AllDiagnoses, EndDate: &end},
			wantSQL:  base + " WHERE r.test_date < ?" + order,
			wantArgs: []any{dayAfterEnd},
		},
		{
			name:     "everything, sqlite encodes dates as text",
			dialect:  SQLite,
			filter:   ReportFilter{Diagnosis: "fracture", StartDate: &start, EndDate: &end},
			wantSQL:  base + " WHERE r.diagnosis = ? AND r.test_date >= ? AND r.test_date < ?" + order,
			wantArgs: []any{"fracture", "2023-05-01", "2023-06-01"},
		},
		{
			name:     "everything, postgres",
			dialect:  Postgres,
			filter:   ReportFilter{Diagnosis: "fracture", StartDate: &start, EndDate: &end},
			wantSQL:  base + " WHERE r.diagnosis = $1 AND r.test_date >= $2 AND r.test_date < $3" + order,
			wantArgs: []any{"fracture", startDay, dayAfterEnd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := PatientReport(tt.dialect, tt.filter)
			if err != nil {
				t.Fatalf("PatientReport() error = %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("PatientReport() =\n  %s\nwant\n  %s", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("PatientReport() args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if !reflect.DeepEqual(args[i], tt.wantArgs[i]) {
					t.Errorf("arg[%d] = %#v, want %#v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Person is a row of the persons table as used by the select helpers.
type Person struct {
	PersonID  int64          `db:"person_id" json:"person_id"`
	FirstName string         `db:"first_name" json:"first_name"`
	LastName  string         `db:"last_name" json:"last_name"`
	Phone     sql.NullString `db:"phone" json:"-"`
}

// PhoneNumber returns the phone number or an empty string.
func (p Person) PhoneNumber() string {
	return p.Phone.String
}

// PersonResponse is the JSON form of a Person.
type PersonResponse struct {
	PersonID  int64  `json:"person_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Response converts the person for the API.
func (p Person) Response() PersonResponse {
	return PersonResponse{
		PersonID:  p.PersonID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.PhoneNumber(),
	}
}

// Choice is a (value, label) pair for a select field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ReportRow is one line of the patient report.
type ReportRow struct {
	PersonID  int64          `db:"person_id"`
	LastName  string         `db:"last_name"`
	FirstName string         `db:"first_name"`
	Phone     sql.NullString `db:"phone"`
	TestDate  Date           `db:"test_date"`
}

// Cells returns the row in report header order. The test date is rendered
// as YYYY-MM-DD, or nil when the record has no test date.
func (r ReportRow) Cells() []any {
	var testDate any
	if !r.TestDate.IsZero() {
		testDate = r.TestDate.Format(time.DateOnly)
	}
	return []any{
		r.PersonID,
		r.LastName,
		r.FirstName,
		r.Phone.String,
		testDate,
	}
}

// ReportHeader is the header row of the patient report.
var ReportHeader = []string{"ID", "Last Name", "First Name", "Phone", "Diagnosis Date"}

// Date is a calendar date scanned from any of the supported drivers. DuckDB
// and pgx return time.Time, SQLite stores ISO-8601 text. NULL scans to the
// zero Date.
type Date struct {
	time.Time
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date", s)
}

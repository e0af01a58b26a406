// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The `query` tag names the URL parameter; validation errors report that name.
// Custom tags registered by the validation package:
//   - granularity: none, year, month or day
//   - role: d, r, p or doctor, radiologist, patient
//
// Example usage:
//
//	req := parseAnalysisRequest(r)
//	if err := validateRequest(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Code, err.Message, nil)
//	    return
//	}
package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/radreports/internal/database/query"
)

// dateLayout is the calendar-day format accepted for date parameters.
const dateLayout = time.DateOnly

// Response formats for table endpoints.
const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// AnalysisRequest represents the validated query parameters for /analysis.
//
// Fields:
//   - Subject: group by patient (boolean, default false)
//   - Category: group by test type (boolean, default false)
//   - Granularity: none, year, month or day (default none)
//   - Format: json or csv (default json)
type AnalysisRequest struct {
	Subject     string `query:"subject" validate:"omitempty,boolean"`
	Category    string `query:"category" validate:"omitempty,boolean"`
	Granularity string `query:"granularity" validate:"omitempty,granularity"`
	Format      string `query:"format" validate:"omitempty,oneof=json csv"`
}

// parseAnalysisRequest reads AnalysisRequest from the URL query.
func parseAnalysisRequest(r *http.Request) AnalysisRequest {
	q := r.URL.Query()
	return AnalysisRequest{
		Subject:     strings.TrimSpace(q.Get("subject")),
		Category:    strings.TrimSpace(q.Get("category")),
		Granularity: strings.TrimSpace(q.Get("granularity")),
		Format:      strings.ToLower(strings.TrimSpace(q.Get("format"))),
	}
}

// Selection converts a validated request into the query builder input.
func (a AnalysisRequest) Selection() query.SelectionRequest {
	return query.SelectionRequest{
		IncludeSubject:  parseBool(a.Subject),
		IncludeCategory: parseBool(a.Category),
		DateGranularity: query.ParseDateGranularity(a.Granularity),
	}
}

// ReportRequest represents the validated query parameters for /reports/patients.
//
// Fields:
//   - Diagnosis: exact diagnosis, or "all"/empty for every diagnosis
//   - StartDate: first test day included (YYYY-MM-DD)
//   - EndDate: last test day included (YYYY-MM-DD)
//   - Format: json or csv (default json)
type ReportRequest struct {
	Diagnosis string `query:"diagnosis" validate:"max=255"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Format    string `query:"format" validate:"omitempty,oneof=json csv"`
}

// parseReportRequest reads ReportRequest from the URL query.
func parseReportRequest(r *http.Request) ReportRequest {
	q := r.URL.Query()
	return ReportRequest{
		Diagnosis: strings.TrimSpace(q.Get("diagnosis")),
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
		Format:    strings.ToLower(strings.TrimSpace(q.Get("format"))),
	}
}

// Filter converts a validated request into a report filter.
// It returns ErrDateRangeInverted when both bounds are set and out of order.
func (rr ReportRequest) Filter() (query.ReportFilter, error) {
	f := query.ReportFilter{Diagnosis: rr.Diagnosis}
	if f.Diagnosis == "" {
		f.Diagnosis = query.AllDiagnoses
	}

	var err error
	if f.StartDate, err = parseDate(rr.StartDate); err != nil {
		return f, err
	}
	if f.EndDate, err = parseDate(rr.EndDate); err != nil {
		return f, err
	}

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return f, ErrDateRangeInverted
	}
	return f, nil
}

// PersonsRequest represents the validated query parameters for /persons and
// /choices/persons. An empty role selects everyone.
type PersonsRequest struct {
	Role string `query:"role" validate:"omitempty,role"`
}

// parsePersonsRequest reads PersonsRequest from the URL query.
func parsePersonsRequest(r *http.Request) PersonsRequest {
	return PersonsRequest{Role: strings.TrimSpace(r.URL.Query().Get("role"))}
}

// parseBool treats anything strconv.ParseBool rejects as false.
func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

// parseDate parses an optional YYYY-MM-DD value.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

func TestPatientReport_Filter(t *testing.T) {
	t.Parallel()

	may1 := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	may31 := time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target string
		want   query.ReportFilter
	}{
		{
			name:   "defaults to all diagnoses",
			target: "/api/v1/reports/patients",
			want:   query.ReportFilter{Diagnosis: query.AllDiagnoses},
		},
		{
			name:   "diagnosis with range",
			target: "/api/v1/reports/patients?diagnosis=fracture&start_date=2023-05-01&end_date=2023-05-31",
			want:   query.ReportFilter{Diagnosis: "fracture", StartDate: &may1, EndDate: &may31},
		},
		{
			name:   "single day range",
			target: "/api/v1/reports/patients?diagnosis=all&start_date=2023-05-01&end_date=2023-05-01",
			want:   query.ReportFilter{Diagnosis: query.AllDiagnoses, StartDate: &may1, EndDate: &may1},
		},
		{
			name:   "open ended",
			target: "/api/v1/reports/patients?diagnosis=normal&end_date=2023-05-31",
			want:   query.ReportFilter{Diagnosis: "normal", EndDate: &may31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			h := newTestHandler(t, store, 0)

			w, _ := doGet(t, h.PatientReport, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
			}

			got := store.lastFilt
			if got == nil {
				t.Fatal("store was not called")
			}
			if got.Diagnosis != tt.want.Diagnosis {
				t.Errorf("Diagnosis = %q, want %q", got.Diagnosis, tt.want.Diagnosis)
			}
			assertDatePtr(t, "StartDate", got.StartDate, tt.want.StartDate)
			assertDatePtr(t, "EndDate", got.EndDate, tt.want.EndDate)
		})
	}
}

func assertDatePtr(t *testing.T, name string, got, want *time.Time) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", name, got, want)
	case !got.Equal(*want):
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func TestPatientReport_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
	}{
		{"bad start date", "/api/v1/reports/patients?start_date=05/01/2023"},
		{"bad end date", "/api/v1/reports/patients?end_date=2023-13-01"},
		{"inverted range", "/api/v1/reports/patients?start_date=2023-06-01&end_date=2023-05-01"},
		{"diagnosis too long", "/api/v1/reports/patients?diagnosis=" + strings.Repeat("x", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			h := newTestHandler(t, store, 0)

			w, resp := doGet(t, h.PatientReport, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp.Error == nil || resp.Error.Code != CodeValidation {
				t.Errorf("error = %+v, want %s", resp.Error, CodeValidation)
			}
			if store.callCount("report") != 0 {
				t.Error("store should not be queried for an invalid request")
			}
		})
	}
}

func TestPatientReport_NotCached(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	h := newTestHandler(t, store, time.Minute)

	doGet(t, h.PatientReport, "/api/v1/reports/patients?diagnosis=fracture")
	w, _ := doGet(t, h.PatientReport, "/api/v1/reports/patients?diagnosis=fracture")

	if n := store.callCount("report"); n != 2 {
		t.Errorf("store called %d times, want 2", n)
	}
	if got := w.Header().Get(cacheHeader); got != "" {
		t.Errorf("X-Cache = %q, want unset for reports", got)
	}
}

func TestPatientReport_CSV(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	table := models.NewResultTable(models.ReportHeader)
	_ = table.AddRow([]any{int64(3), "Adams", "Alice", "555-0103", "2023-05-02"})
	_ = table.AddRow([]any{int64(4), "O'Brien, Jr.", "Bob", "", "2024-01-15"})
	store.table = table
	h := newTestHandler(t, store, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/patients?format=CSV", nil)
	w := httptest.NewRecorder()
	h.PatientReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "patient-report.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	want := "ID,Last Name,First Name,Phone,Diagnosis Date\n" +
		"3,Adams,Alice,555-0103,2023-05-02\n" +
		"4,\"O'Brien, Jr.\",Bob,,2024-01-15\n"
	if got := w.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

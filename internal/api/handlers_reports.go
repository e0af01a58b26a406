// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"net/http"
	"time"
)

// PatientReport lists patients with a diagnosis inside an optional date range.
// Reports are not cached; they are expected to reflect the latest records.
//
// @Summary Patient report
// @Description Lists patients whose radiology records carry the diagnosis, ordered by test date. diagnosis=all (or omitted) disables the diagnosis filter. Both date bounds are inclusive calendar days.
// @Tags Reports
// @Produce json
// @Produce text/csv
// @Param diagnosis query string false "Diagnosis, or all"
// @Param start_date query string false "First test day (YYYY-MM-DD)"
// @Param end_date query string false "Last test day (YYYY-MM-DD)"
// @Param format query string false "Response format" Enums(json, csv)
// @Success 200 {object} models.APIResponse{data=models.ResultTable} "Report table"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /reports/patients [get]
func (h *Handler) PatientReport(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	start := time.Now()

	req := parseReportRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	filter, err := req.Filter()
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	table, err := h.store.SelectReport(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, err, "Failed to generate report")
		return
	}

	respondTable(w, table, req.Format, "patient-report.csv", start)
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/radreports/internal/cache"
	"github.com/tomtom215/radreports/internal/logging"
	"github.com/tomtom215/radreports/internal/models"
)

// DataAnalysis runs the aggregate count query for the selected dimensions.
//
// @Summary Data analysis (OLAP count)
// @Description Counts image rows joined to their radiology records, grouped by any of patient, test type and a nested date granularity. With no dimension selected the result is a single total. Columns always appear in the order subject_id, category, year, month, day, then num_rows.
// @Tags Analysis
// @Produce json
// @Produce text/csv
// @Param subject query bool false "Group by patient"
// @Param category query bool false "Group by test type"
// @Param granularity query string false "Date granularity" Enums(none, year, month, day)
// @Param format query string false "Response format" Enums(json, csv)
// @Success 200 {object} models.APIResponse{data=models.ResultTable} "Aggregate table"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /analysis [get]
func (h *Handler) DataAnalysis(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	start := time.Now()

	req := parseAnalysisRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	sel := req.Selection()
	key := cache.GenerateKey("analysis", sel)

	table, hit, err := h.loadTable(key, func() (*models.ResultTable, error) {
		return h.store.SelectDataAnalysis(r.Context(), sel)
	})
	if err != nil {
		respondStoreError(w, r, err, "Failed to run data analysis")
		return
	}

	logging.Ctx(r.Context()).Debug().
		Bool("subject", sel.IncludeSubject).
		Bool("category", sel.IncludeCategory).
		Str("granularity", string(sel.DateGranularity)).
		Int("rows", table.Len()).
		Bool("cache_hit", hit).
		Msg("Data analysis served")

	setCacheStatus(w, hit)
	respondTable(w, table, req.Format, "analysis.csv", start)
}

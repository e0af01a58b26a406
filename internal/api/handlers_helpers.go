// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/radreports/internal/database"
	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/logging"
	"github.com/tomtom215/radreports/internal/models"
	"github.com/tomtom215/radreports/internal/validation"
)

// cacheHeader reports whether a response came from the result cache.
const cacheHeader = "X-Cache"

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope with the query time since start.
func respondSuccess(w http.ResponseWriter, data any, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a quoted ETag from the FNV-1a hash of data
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends a 400 carrying the validator's field details.
func respondValidationError(w http.ResponseWriter, apiErr *models.APIError) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondStoreError maps a data layer error to a status code and logs it with
// the request's logger.
//
//	ErrCircuitOpen            -> 503 SERVICE_UNAVAILABLE
//	ErrInvalidRole            -> 400 VALIDATION_ERROR
//	context.DeadlineExceeded  -> 504 QUERY_TIMEOUT
//	anything else             -> 500 DATABASE_ERROR
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logging.CtxErr(r.Context(), err).
		Str("path", r.URL.Path).
		Msg(sanitizeLogValue(message))

	switch {
	case errors.Is(err, database.ErrCircuitOpen):
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"Database temporarily unavailable, retry shortly", nil)
	case errors.Is(err, query.ErrInvalidRole):
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, CodeTimeout, "Query timed out", nil)
	default:
		respondError(w, http.StatusInternalServerError, CodeDatabase, message, nil)
	}
}

// respondTable sends a ResultTable as JSON, or as CSV when format is "csv".
func respondTable(w http.ResponseWriter, table *models.ResultTable, format, filename string, start time.Time) {
	if format != formatCSV {
		respondSuccess(w, table, start)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if err := writeCSV(w, table); err != nil {
		logging.Error().Err(err).Msg("Failed to write CSV response")
	}
}

// writeCSV writes the header line followed by every row.
func writeCSV(w http.ResponseWriter, table *models.ResultTable) error {
	cw := csv.NewWriter(w)
	for _, row := range table.Table() {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatCell renders a table cell for CSV. NULL becomes an empty field.
func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(dateLayout)
	default:
		return fmt.Sprint(t)
	}
}

// setCacheStatus records whether the payload came from the result cache.
func setCacheStatus(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(cacheHeader, "HIT")
		return
	}
	w.Header().Set(cacheHeader, "MISS")
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
//
// Example:
//
//	req := parsePersonsRequest(r)
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondValidationError(w, apiErr)
//	    return
//	}
func validateRequest(v any) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// requireGet rejects anything but GET and HEAD. Returns false when a response was written.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
	return false
}

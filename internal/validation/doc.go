// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package validation provides struct validation using go-playground/validator v10.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom "granularity" and "role" tags for the radiology query parameters
//   - Field names taken from the `query` struct tag
//   - APIError conversion matching the application's error format
//
// # Quick Start
//
//	type ReportRequest struct {
//	    Diagnosis string `query:"diagnosis" validate:"omitempty,max=128"`
//	    StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Error Format
//
// A single failure produces details with field, tag and value. Several
// failures produce a "fields" list and a message joining every field error.
//
// # Thread Safety
//
// The validator instance is created once via sync.Once and is safe for
// concurrent use.
package validation

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import "errors"

// Common API errors
var (
	// ErrDateRangeInverted indicates end_date falls before start_date
	ErrDateRangeInverted = errors.New("end_date must not be before start_date")
)

// API error codes carried in APIError.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDatabase           = "DATABASE_ERROR"
	CodeTimeout            = "QUERY_TIMEOUT"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternal           = "INTERNAL_ERROR"
)

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: assigns X-Request-ID, stores it in the context for logging.Ctx
    and logs each completed request at debug level
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern

Both are standard func(http.Handler) http.Handler middleware for chi's r.Use.
*/
package middleware

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//     when its context is canceled.
//   - DBHealthService: pings the database on an interval, exports
//     radiology_db_up and fails after repeated ping errors so the supervisor
//     logs and backs off.
package services

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package main provides the Radiology Reports HTTP server
//
// @title Radiology Reports API
// @version 1.0
// @description Aggregate analysis and patient reports over a radiology information database.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description The patient report endpoint is limited separately to 30 requests per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/radreports/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and service status
//
// @tag.name Analysis
// @tag.description Dynamic aggregate counts over radiology records
//
// @tag.name Reports
// @tag.description Patient reports filtered by diagnosis and test date
//
// @tag.name Persons
// @tag.description Person listings and select-field choices
package main

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package api provides the HTTP REST API layer for the radiology reports service.

It exposes the data analysis (OLAP count) screen, the patient report generator
and the select-field helpers used by the front end to populate its forms.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers backed by a Store (normally *database.DB)
  - Response formatting: the APIResponse envelope with metadata
  - Error handling: sentinel errors mapped to HTTP status codes
  - Rate limiting: go-chi/httprate, per client IP
  - CORS: go-chi/cors

Endpoints (all GET):

	/api/v1/health, /health/live, /health/ready
	/api/v1/analysis?subject=true&category=false&granularity=month
	/api/v1/reports/patients?diagnosis=fracture&start_date=2023-01-01&end_date=2023-12-31
	/api/v1/persons?role=d
	/api/v1/choices/persons?role=p
	/api/v1/choices/diagnoses
	/metrics
	/swagger/*

The analysis and report endpoints return a ResultTable ({"header": [...],
"rows": [[...]]}); pass format=csv to download the same table as CSV with the
header as the first line.

Usage Example:

	db, _ := database.New(&cfg.Database)
	handler := api.NewHandler(db, cfg)
	defer handler.Close()

	router := api.NewRouter(handler, &cfg.Security)
	http.ListenAndServe(":8080", router.SetupChi())

Caching:

Caching is off by default, so every request runs one query. Setting
server.cache_ttl above zero caches analysis tables and choice lists for that
long; responses then carry X-Cache: HIT or MISS.
*/
package api

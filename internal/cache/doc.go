// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package cache provides a generic in-memory TTL cache for query results.
//
// The API layer keeps aggregate tables and select-field choices here for a
// short time so repeated screen loads do not rerun the same GROUP BY.
//
// Usage:
//
//	tables := cache.New[*models.ResultTable](time.Minute)
//	defer tables.Close()
//
//	key := cache.GenerateKey("analysis", req)
//	table, hit, err := tables.GetOrLoad(key, func() (*models.ResultTable, error) {
//	    return db.SelectDataAnalysis(ctx, req)
//	})
//
// Thread Safety: all methods are safe for concurrent use.
package cache

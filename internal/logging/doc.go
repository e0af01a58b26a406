// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package logging provides centralized zerolog-based logging.
//
// The package keeps one global zerolog logger configured by Init, exposes
// level helpers (Info, Debug, Err, ...), attaches HTTP request ids through
// the request context, and adapts zerolog to slog for libraries that only
// accept *slog.Logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("driver", "duckdb").Msg("Database opened")
//	logging.Ctx(ctx).Debug().Str("sql", query).Msg("Executing query")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging

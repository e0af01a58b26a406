// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/radreports/internal/config"
	"github.com/tomtom215/radreports/internal/logging"
	"github.com/tomtom215/radreports/internal/metrics"
	"github.com/tomtom215/radreports/internal/models"
)

const breakerName = "database"

// newBreaker builds the circuit breaker that guards query execution.
// Circuit breaker configuration:
// - Opens after BreakerMaxFailures consecutive failures
// - Stays open for BreakerTimeout before probing again
// - Max 3 concurrent requests in half-open state
func newBreaker(cfg *config.DatabaseConfig) *gobreaker.CircuitBreaker[any] {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= maxFailures
			if shouldTrip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening database circuit")
			}
			return shouldTrip
		},

		// A caller giving up is not a database failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// execute runs fn through the circuit breaker and records query metrics
// under operation. Errors from fn are returned wrapped but unchanged.
func execute[T any](db *DB, operation string, fn func() (T, error)) (T, error) {
	var zero T
	start := time.Now()

	result, err := db.breaker.Execute(func() (any, error) {
		return fn()
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			logging.Warn().Err(err).Str("operation", operation).Msg("[CIRCUIT BREAKER] Query rejected")
			return zero, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(db.breaker.Counts().ConsecutiveFailures))
		metrics.RecordDBQuery(operation, time.Since(start), 0, err)
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}

	metrics.RecordDBQuery(operation, time.Since(start), rowCount(typed), nil)
	return typed, nil
}

// rowCount reports the number of rows in a query result for metrics.
func rowCount(v any) int {
	switch r := v.(type) {
	case *models.ResultTable:
		return r.Len()
	case []models.Person:
		return len(r)
	case []models.ReportRow:
		return len(r)
	case []string:
		return len(r)
	default:
		return 0
	}
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// BreakerState returns the current circuit breaker state as a string.
func (db *DB) BreakerState() string {
	return stateToString(db.breaker.State())
}

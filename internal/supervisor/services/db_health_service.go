// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/radreports/internal/logging"
	"github.com/tomtom215/radreports/internal/metrics"
)

// ErrDatabaseUnreachable is returned by DBHealthService after too many failed pings.
var ErrDatabaseUnreachable = errors.New("database unreachable")

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBHealthService pings the database every interval and publishes the result
// as the radiology_db_up gauge. After maxFailures consecutive failures Serve
// returns ErrDatabaseUnreachable so the supervisor records the failure and
// restarts the monitor with backoff.
type DBHealthService struct {
	pinger      Pinger
	interval    time.Duration
	maxFailures int
	name        string
}

// NewDBHealthService creates the monitor. interval defaults to 30s and
// maxFailures to 3 when not positive.
func NewDBHealthService(pinger Pinger, interval time.Duration, maxFailures int) *DBHealthService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if maxFailures <= 0 {
		maxFailures = 3
	}
	return &DBHealthService{
		pinger:      pinger,
		interval:    interval,
		maxFailures: maxFailures,
		name:        "db-health",
	}
}

// Serve implements suture.Service.
func (s *DBHealthService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.name)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	failures := 0
	for {
		if err := s.check(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			log.Warn().Err(err).Int("consecutive_failures", failures).Msg("Database ping failed")
			if failures >= s.maxFailures {
				return fmt.Errorf("%w after %d attempts: %w", ErrDatabaseUnreachable, failures, err)
			}
		} else {
			if failures > 0 {
				log.Info().Int("after_failures", failures).Msg("Database reachable again")
			}
			failures = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// check runs one ping bounded by the interval and updates the gauge.
func (s *DBHealthService) check(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.pinger.Ping(pingCtx); err != nil {
		metrics.DBUp.Set(0)
		return err
	}
	metrics.DBUp.Set(1)
	return nil
}

// String implements fmt.Stringer.
func (s *DBHealthService) String() string {
	return s.name
}

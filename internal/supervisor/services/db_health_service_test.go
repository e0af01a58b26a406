// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/radreports/internal/metrics"
)

// scriptedPinger fails the first failFor pings, then succeeds.
type scriptedPinger struct {
	calls   atomic.Int32
	failFor int32
	always  bool
}

var errPing = errors.New("connection refused")

func (p *scriptedPinger) Ping(context.Context) error {
	n := p.calls.Add(1)
	if p.always || n <= p.failFor {
		return errPing
	}
	return nil
}

func TestDBHealthService_Defaults(t *testing.T) {
	svc := NewDBHealthService(&scriptedPinger{}, 0, 0)
	if svc.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", svc.interval)
	}
	if svc.maxFailures != 3 {
		t.Errorf("maxFailures = %d, want 3", svc.maxFailures)
	}
	if svc.String() != "db-health" {
		t.Errorf("String() = %q", svc.String())
	}

	var _ suture.Service = svc
}

// The gauge is process-global, so these subtests run sequentially.
func TestDBHealthService_Serve(t *testing.T) {
	t.Run("fails after consecutive ping errors", func(t *testing.T) {
		pinger := &scriptedPinger{always: true}
		svc := NewDBHealthService(pinger, 5*time.Millisecond, 3)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := svc.Serve(ctx)
		if !errors.Is(err, ErrDatabaseUnreachable) {
			t.Fatalf("Serve() error = %v, want ErrDatabaseUnreachable", err)
		}
		if !errors.Is(err, errPing) {
			t.Errorf("Serve() error = %v, should wrap the ping error", err)
		}
		if n := pinger.calls.Load(); n != 3 {
			t.Errorf("pings = %d, want 3", n)
		}
		if v := testutil.ToFloat64(metrics.DBUp); v != 0 {
			t.Errorf("radiology_db_up = %v, want 0", v)
		}
	})

	t.Run("recovery resets the failure count", func(t *testing.T) {
		// Two failures, then healthy: never reaches maxFailures of 3
		pinger := &scriptedPinger{failFor: 2}
		svc := NewDBHealthService(pinger, 5*time.Millisecond, 3)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		deadline := time.After(2 * time.Second)
		for pinger.calls.Load() < 6 {
			select {
			case err := <-errCh:
				t.Fatalf("Serve returned early: %v", err)
			case <-deadline:
				t.Fatal("timed out waiting for pings")
			case <-time.After(5 * time.Millisecond):
			}
		}
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
		if v := testutil.ToFloat64(metrics.DBUp); v != 1 {
			t.Errorf("radiology_db_up = %v, want 1", v)
		}
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		svc := NewDBHealthService(&scriptedPinger{}, time.Hour, 3)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	})
}

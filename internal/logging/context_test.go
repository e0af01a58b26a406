// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id := GenerateRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateRequestID() = %q, not a UUID: %v", id, err)
	}
	if id == GenerateRequestID() {
		t.Error("GenerateRequestID() returned the same id twice")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", got)
	}
}

func TestCtx_AddsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRequestID(ctx, "req-abc")

	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-abc"`) {
		t.Errorf("expected request_id in output: %s", output)
	}
	if !strings.Contains(output, "handled") {
		t.Errorf("expected message in output: %s", output)
	}
}

func TestCtxErr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))

	CtxErr(ctx, context.DeadlineExceeded).Msg("query timed out")

	if !strings.Contains(buf.String(), "context deadline exceeded") {
		t.Errorf("expected error in output: %s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	original := Logger()
	defer SetLogger(original)
	SetLogger(zerolog.New(&buf))

	logger := WithComponent("database")
	logger.Info().Msg("schema ready")

	if !strings.Contains(buf.String(), `"component":"database"`) {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}

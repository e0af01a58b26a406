// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"context"
	"time"

	"github.com/tomtom215/radreports/internal/cache"
	"github.com/tomtom215/radreports/internal/config"
	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

// Store is the data access the handlers need. *database.DB satisfies it.
type Store interface {
	Ping(ctx context.Context) error
	Driver() string
	SelectDataAnalysis(ctx context.Context, req query.SelectionRequest) (*models.ResultTable, error)
	SelectReport(ctx context.Context, f query.ReportFilter) (*models.ResultTable, error)
	SelectPersonsByRole(ctx context.Context, role query.Role) ([]models.Person, error)
	SelectAllPersons(ctx context.Context) ([]models.Person, error)
	DiagnosisChoices(ctx context.Context) ([]models.Choice, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and error helpers
//   - handlers_health.go: health endpoints
//   - handlers_analysis.go: data analysis endpoint
//   - handlers_reports.go: report generator endpoint
//   - handlers_persons.go: persons and select-field choices
type Handler struct {
	store     Store
	config    *config.Config
	startTime time.Time

	// nil when caching is disabled
	tables  *cache.Cache[*models.ResultTable]
	choices *cache.Cache[[]models.Choice]
}

// NewHandler creates a new API handler.
//
// When cfg.Server.CacheTTL is positive, analysis tables and choice lists are
// cached for that long. Call Close to stop the cache sweepers.
//
// Example:
//
//	handler := api.NewHandler(db, cfg)
//	defer handler.Close()
//	router := api.NewRouter(handler, &cfg.Security)
func NewHandler(store Store, cfg *config.Config) *Handler {
	h := &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}

	if cfg != nil && cfg.Server.CacheTTL > 0 {
		h.tables = cache.New[*models.ResultTable](cfg.Server.CacheTTL)
		h.choices = cache.New[[]models.Choice](cfg.Server.CacheTTL)
	}

	return h
}

// Close releases background resources held by the handler.
func (h *Handler) Close() {
	if h.tables != nil {
		h.tables.Close()
	}
	if h.choices != nil {
		h.choices.Close()
	}
}

// loadTable returns a cached table for key or runs load. The bool reports a cache hit.
func (h *Handler) loadTable(key string, load func() (*models.ResultTable, error)) (*models.ResultTable, bool, error) {
	if h.tables == nil {
		t, err := load()
		return t, false, err
	}
	return h.tables.GetOrLoad(key, load)
}

// loadChoices returns cached choices for key or runs load. The bool reports a cache hit.
func (h *Handler) loadChoices(key string, load func() ([]models.Choice, error)) ([]models.Choice, bool, error) {
	if h.choices == nil {
		c, err := load()
		return c, false, err
	}
	return h.choices.GetOrLoad(key, load)
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/radreports/internal/config"
	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

// fakeStore records the arguments it receives and returns canned results.
type fakeStore struct {
	mu sync.Mutex

	pingErr error
	err     error

	table    *models.ResultTable
	persons  []models.Person
	choices  []models.Choice
	lastSel  *query.SelectionRequest
	lastFilt *query.ReportFilter
	lastRole query.Role
	calls    map[string]int
}

func newFakeStore() *fakeStore {
	table := models.NewResultTable([]string{"num_rows"})
	_ = table.AddRow([]any{int64(5)})

	return &fakeStore{
		table: table,
		persons: []models.Person{
			{PersonID: 1, FirstName: "Gregory", LastName: "House", Phone: sql.NullString{String: "5550100", Valid: true}},
			{PersonID: 2, FirstName: "Lisa", LastName: "Cuddy"},
		},
		choices: []models.Choice{{Value: "all", Label: "All"}, {Value: "fracture", Label: "fracture"}},
		calls:   make(map[string]int),
	}
}

func (f *fakeStore) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeStore) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) Driver() string { return config.DriverDuckDB }

func (f *fakeStore) SelectDataAnalysis(_ context.Context, req query.SelectionRequest) (*models.ResultTable, error) {
	f.record("analysis")
	f.mu.Lock()
	f.lastSel = &req
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func (f *fakeStore) SelectReport(_ context.Context, filter query.ReportFilter) (*models.ResultTable, error) {
	f.record("report")
	f.mu.Lock()
	f.lastFilt = &filter
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func (f *fakeStore) SelectPersonsByRole(_ context.Context, role query.Role) ([]models.Person, error) {
	f.record("persons_by_role")
	f.mu.Lock()
	f.lastRole = role
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.persons, nil
}

func (f *fakeStore) SelectAllPersons(context.Context) ([]models.Person, error) {
	f.record("all_persons")
	if f.err != nil {
		return nil, f.err
	}
	return f.persons, nil
}

func (f *fakeStore) DiagnosisChoices(context.Context) ([]models.Choice, error) {
	f.record("diagnoses")
	if f.err != nil {
		return nil, f.err
	}
	return f.choices, nil
}

// newTestHandler builds a handler over store with the given cache TTL.
func newTestHandler(t *testing.T, store Store, cacheTTL time.Duration) *Handler {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{CacheTTL: cacheTTL}}
	h := NewHandler(store, cfg)
	t.Cleanup(h.Close)
	return h
}

// testResponse is an APIResponse with Data left raw for typed decoding.
type testResponse struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// doGet runs handler for a GET of target and decodes the envelope.
func doGet(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler(w, req)

	var resp testResponse
	if w.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v\nbody: %s", err, w.Body.String())
		}
	}
	return w, resp
}

// decodeData unmarshals the envelope's data into v.
func decodeData(t *testing.T, resp testResponse, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v\ndata: %s", err, resp.Data)
	}
}

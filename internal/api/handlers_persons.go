// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/radreports/internal/database"
	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

// Persons lists persons, optionally restricted to one user role.
//
// @Summary List persons
// @Description Lists persons holding an account of the given role, or every person when role is omitted. A person with several accounts of the role appears once.
// @Tags Persons
// @Produce json
// @Param role query string false "Role" Enums(d, r, p, doctor, radiologist, patient)
// @Success 200 {object} models.APIResponse{data=[]models.PersonResponse} "Persons"
// @Failure 400 {object} models.APIResponse "Invalid role"
// @Router /persons [get]
func (h *Handler) Persons(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	start := time.Now()

	req := parsePersonsRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	persons, err := h.selectPersons(r.Context(), req.Role)
	if err != nil {
		respondStoreError(w, r, err, "Failed to list persons")
		return
	}

	out := make([]models.PersonResponse, len(persons))
	for i, p := range persons {
		out[i] = p.Response()
	}
	respondSuccess(w, out, start)
}

// PersonChoices returns select-field choices formatted "ID - Last, First".
//
// @Summary Person choices
// @Description Select-field choices for persons of a role. Each label is formatted "ID - Last, First".
// @Tags Choices
// @Produce json
// @Param role query string false "Role" Enums(d, r, p, doctor, radiologist, patient)
// @Success 200 {object} models.APIResponse{data=[]models.Choice} "Choices"
// @Failure 400 {object} models.APIResponse "Invalid role"
// @Router /choices/persons [get]
func (h *Handler) PersonChoices(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	start := time.Now()

	req := parsePersonsRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	key := "persons:" + req.Role
	if role, err := query.ParseRole(req.Role); err == nil {
		key = "persons:" + string(role)
	}

	choices, hit, err := h.loadChoices(key, func() ([]models.Choice, error) {
		persons, err := h.selectPersons(r.Context(), req.Role)
		if err != nil {
			return nil, err
		}
		return database.PersonChoices(persons), nil
	})
	if err != nil {
		respondStoreError(w, r, err, "Failed to list person choices")
		return
	}

	setCacheStatus(w, hit)
	respondSuccess(w, choices, start)
}

// DiagnosisChoices returns ("all","All") followed by every distinct diagnosis.
//
// @Summary Diagnosis choices
// @Description Select-field choices for the report generator. The first choice is the "all" sentinel.
// @Tags Choices
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Choice} "Choices"
// @Router /choices/diagnoses [get]
func (h *Handler) DiagnosisChoices(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	start := time.Now()

	choices, hit, err := h.loadChoices("diagnoses", func() ([]models.Choice, error) {
		return h.store.DiagnosisChoices(r.Context())
	})
	if err != nil {
		respondStoreError(w, r, err, "Failed to list diagnoses")
		return
	}

	setCacheStatus(w, hit)
	respondSuccess(w, choices, start)
}

// selectPersons resolves an optional role string to the matching selector.
func (h *Handler) selectPersons(ctx context.Context, role string) ([]models.Person, error) {
	if role == "" {
		return h.store.SelectAllPersons(ctx)
	}

	parsed, err := query.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return h.store.SelectPersonsByRole(ctx, parsed)
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

// SelectPersonsByRole returns the persons holding a user account of the given class.
func (db *DB) SelectPersonsByRole(ctx context.Context, role query.Role) ([]models.Person, error) {
	sqlStr, args, err := query.PersonsByRole(db.dialect, role)
	if err != nil {
		return nil, fmt.Errorf("failed to build persons query: %w", err)
	}
	return db.selectPersons(ctx, "persons_by_role_"+role.String(), sqlStr, args)
}

// SelectDoctors returns every person with a doctor account.
func (db *DB) SelectDoctors(ctx context.Context) ([]models.Person, error) {
	return db.SelectPersonsByRole(ctx, query.RoleDoctor)
}

// SelectRadiologists returns every person with a radiologist account.
func (db *DB) SelectRadiologists(ctx context.Context) ([]models.Person, error) {
	return db.SelectPersonsByRole(ctx, query.RoleRadiologist)
}

// SelectPatients returns every person with a patient account.
func (db *DB) SelectPatients(ctx context.Context) ([]models.Person, error) {
	return db.SelectPersonsByRole(ctx, query.RolePatient)
}

// SelectAllPersons returns every person regardless of account.
func (db *DB) SelectAllPersons(ctx context.Context) ([]models.Person, error) {
	sqlStr, args, err := query.AllPersons(db.dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to build persons query: %w", err)
	}
	return db.selectPersons(ctx, "all_persons", sqlStr, args)
}

func (db *DB) selectPersons(ctx context.Context, operation, sqlStr string, args []any) ([]models.Person, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	persons, err := execute(db, operation, func() ([]models.Person, error) {
		out := make([]models.Person, 0)
		if err := db.conn.SelectContext(ctx, &out, sqlStr, args...); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select persons: %w", err)
	}
	return persons, nil
}

// PersonChoices formats persons as select-field choices labelled
// "ID - Last, First", in input order.
func PersonChoices(persons []models.Person) []models.Choice {
	choices := make([]models.Choice, 0, len(persons))
	for _, p := range persons {
		id := strconv.FormatInt(p.PersonID, 10)
		choices = append(choices, models.Choice{
			Value: id,
			Label: fmt.Sprintf("%s - %s, %s", id, p.LastName, p.FirstName),
		})
	}
	return choices
}

// SelectDiagnoses returns the distinct non-null diagnoses in ascending order.
func (db *DB) SelectDiagnoses(ctx context.Context) ([]string, error) {
	sqlStr, args, err := query.DistinctDiagnoses(db.dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to build diagnoses query: %w", err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	diagnoses, err := execute(db, "distinct_diagnoses", func() ([]string, error) {
		out := make([]string, 0)
		if err := db.conn.SelectContext(ctx, &out, sqlStr, args...); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select diagnoses: %w", err)
	}
	return diagnoses, nil
}

// DiagnosisChoices returns ("all", "All") followed by one choice per distinct
// diagnosis, value and label both the diagnosis text.
func (db *DB) DiagnosisChoices(ctx context.Context) ([]models.Choice, error) {
	diagnoses, err := db.SelectDiagnoses(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]models.Choice, 0, len(diagnoses)+1)
	choices = append(choices, models.Choice{Value: query.AllDiagnoses, Label: "All"})
	for _, d := range diagnoses {
		choices = append(choices, models.Choice{Value: d, Label: d})
	}
	return choices, nil
}

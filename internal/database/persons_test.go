// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/models"
)

func personIDs(persons []models.Person) []int64 {
	ids := make([]int64, len(persons))
	for i, p := range persons {
		ids[i] = p.PersonID
	}
	return ids
}

func TestSelectPersonsByRole(t *testing.T) {
	db := setupFixtureDB(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		selectFn func(context.Context) ([]models.Person, error)
		want     []int64
	}{
		{"doctors", db.SelectDoctors, []int64{1}},
		{"radiologists", db.SelectRadiologists, []int64{2}},
		{"patients are distinct", db.SelectPatients, []int64{3, 4}},
		{"all persons includes those without accounts", db.SelectAllPersons, []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persons, err := tt.selectFn(ctx)
			if err != nil {
				t.Fatalf("select error = %v", err)
			}
			if got := personIDs(persons); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("person ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectPersonsByRole_Fields(t *testing.T) {
	db := setupFixtureDB(t)

	persons, err := db.SelectPersonsByRole(context.Background(), query.RolePatient)
	if err != nil {
		t.Fatalf("SelectPersonsByRole() error = %v", err)
	}

	want := models.Person{
		PersonID:  3,
		FirstName: "Alice",
		LastName:  "Adams",
		Phone:     sql.NullString{String: "5550000003", Valid: true},
	}
	if persons[0] != want {
		t.Errorf("persons[0] = %+v, want %+v", persons[0], want)
	}
}

func TestSelectPersonsByRole_EmptyIsNotNil(t *testing.T) {
	db := setupTestDB(t)

	persons, err := db.SelectDoctors(context.Background())
	if err != nil {
		t.Fatalf("SelectDoctors() error = %v", err)
	}
	if persons == nil || len(persons) != 0 {
		t.Errorf("SelectDoctors() = %#v, want empty non-nil slice", persons)
	}
}

func TestPersonChoices(t *testing.T) {
	t.Parallel()

	persons := []models.Person{
		{PersonID: 4, FirstName: "Bob", LastName: "Brown"},
		{PersonID: 12, FirstName: "Ada", LastName: "Lovelace"},
	}

	want := []models.Choice{
		{Value: "4", Label: "4 - Brown, Bob"},
		{Value: "12", Label: "12 - Lovelace, Ada"},
	}
	if got := PersonChoices(persons); !reflect.DeepEqual(got, want) {
		t.Errorf("PersonChoices() = %v, want %v", got, want)
	}

	if got := PersonChoices(nil); len(got) != 0 {
		t.Errorf("PersonChoices(nil) = %v, want empty", got)
	}
}

func TestDiagnosisChoices(t *testing.T) {
	db := setupFixtureDB(t)

	choices, err := db.DiagnosisChoices(context.Background())
	if err != nil {
		t.Fatalf("DiagnosisChoices() error = %v", err)
	}

	want := []models.Choice{
		{Value: "all", Label: "All"},
		{Value: "fracture", Label: "fracture"},
		{Value: "normal", Label: "normal"},
		{Value: "pneumonia", Label: "pneumonia"},
	}
	if !reflect.DeepEqual(choices, want) {
		t.Errorf("DiagnosisChoices() = %v, want %v", choices, want)
	}
}

func TestDiagnosisChoices_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	choices, err := db.DiagnosisChoices(context.Background())
	if err != nil {
		t.Fatalf("DiagnosisChoices() error = %v", err)
	}
	want := []models.Choice{{Value: "all", Label: "All"}}
	if !reflect.DeepEqual(choices, want) {
		t.Errorf("DiagnosisChoices() = %v, want %v", choices, want)
	}
}

// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package database

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tomtom215/radreports/internal/database/query"
	"github.com/tomtom215/radreports/internal/logging"
)

// PersonRecord is a row of the persons table.
type PersonRecord struct {
	PersonID  int64
	FirstName string
	LastName  string
	Address   string
	Email     string
	Phone     string
}

// UserRecord is a row of the users table.
type UserRecord struct {
	UserName       string
	Password       string
	Class          query.Role
	PersonID       int64
	DateRegistered time.Time
}

// RadiologyRecord is a row of the radiology_record table.
type RadiologyRecord struct {
	RecordID        int64
	PatientID       int64
	DoctorID        int64
	RadiologistID   int64
	TestType        string
	PrescribingDate time.Time
	TestDate        time.Time
	Diagnosis       string
	Description     string
}

// Dataset is a set of rows to insert in one transaction.
type Dataset struct {
	Persons []PersonRecord
	Users   []UserRecord
	Records []RadiologyRecord
	Images  []ImageRecord
}

// ImageRecord is a row of the pacs_images table.
type ImageRecord struct {
	ImageID  int64
	RecordID int64
}

// Load inserts the dataset inside a single transaction.
func (db *DB) Load(ctx context.Context, ds Dataset) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, ins := range db.datasetInserts(ds) {
		sqlStr, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("failed to insert dataset: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// datasetInserts returns one multi-row INSERT per non-empty table, parents first.
func (db *DB) datasetInserts(ds Dataset) []sq.InsertBuilder {
	d := db.dialect
	var out []sq.InsertBuilder

	if len(ds.Persons) > 0 {
		ins := d.Insert("persons").Columns("person_id", "first_name", "last_name", "address", "email", "phone")
		for _, p := range ds.Persons {
			ins = ins.Values(p.PersonID, p.FirstName, p.LastName, p.Address, p.Email, p.Phone)
		}
		out = append(out, ins)
	}

	if len(ds.Users) > 0 {
		ins := d.Insert("users").Columns("user_name", "password", "user_class", "person_id", "date_registered")
		for _, u := range ds.Users {
			ins = ins.Values(u.UserName, u.Password, string(u.Class), u.PersonID, d.DateArg(u.DateRegistered))
		}
		out = append(out, ins)
	}

	if len(ds.Records) > 0 {
		ins := d.Insert("radiology_record").Columns(
			"record_id", "patient_id", "doctor_id", "radiologist_id", "test_type",
			"prescribing_date", "test_date", "diagnosis", "description",
		)
		for _, r := range ds.Records {
			ins = ins.Values(
				r.RecordID, r.PatientID, r.DoctorID, r.RadiologistID, r.TestType,
				d.DateArg(r.PrescribingDate), d.DateArg(r.TestDate), r.Diagnosis, r.Description,
			)
		}
		out = append(out, ins)
	}

	if len(ds.Images) > 0 {
		ins := d.Insert("pacs_images").Columns("image_id", "record_id")
		for _, img := range ds.Images {
			ins = ins.Values(img.ImageID, img.RecordID)
		}
		out = append(out, ins)
	}

	return out
}

// SeedDemoData loads DemoDataset into an empty database. A database that
// already has persons is left untouched.
func (db *DB) SeedDemoData(ctx context.Context) error {
	sqlStr, args, err := db.dialect.Select("count(*)").From("persons").ToSql()
	if err != nil {
		return err
	}

	var existing int64
	if err := db.conn.GetContext(ctx, &existing, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to count persons: %w", err)
	}
	if existing > 0 {
		logging.Debug().Int64("persons", existing).Msg("Database already populated, skipping demo data")
		return nil
	}

	ds := DemoDataset()
	if err := db.Load(ctx, ds); err != nil {
		return err
	}

	logging.Info().
		Int("persons", len(ds.Persons)).
		Int("records", len(ds.Records)).
		Int("images", len(ds.Images)).
		Msg("Seeded demo data")
	return nil
}

// DemoDataset returns a small deterministic radiology dataset: two doctors,
// two radiologists, six patients and a spread of records over 2023 and 2024.
func DemoDataset() Dataset {
	registered := time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)

	people := []struct {
		first, last string
		class       query.Role
	}{
		{"Gregory", "House", query.RoleDoctor},
		{"Meredith", "Grey", query.RoleDoctor},
		{"Wilhelm", "Roentgen", query.RoleRadiologist},
		{"Marie", "Curie", query.RoleRadiologist},
		{"Alice", "Adams", query.RolePatient},
		{"Bob", "Brown", query.RolePatient},
		{"Carol", "Clark", query.RolePatient},
		{"Dan", "Davis", query.RolePatient},
		{"Erin", "Evans", query.RolePatient},
		{"Frank", "Foster", query.RolePatient},
	}

	var ds Dataset
	for i, p := range people {
		id := int64(i + 1)
		ds.Persons = append(ds.Persons, PersonRecord{
			PersonID:  id,
			FirstName: p.first,
			LastName:  p.last,
			Address:   fmt.Sprintf("%d Main Street", 100+i),
			Email:     fmt.Sprintf("%s.%s@example.org", p.first, p.last),
			Phone:     fmt.Sprintf("555%07d", 100+i),
		})
		ds.Users = append(ds.Users, UserRecord{
			UserName:       fmt.Sprintf("%s%d", p.class, id),
			Password:       "changeme",
			Class:          p.class,
			PersonID:       id,
			DateRegistered: registered,
		})
	}

	testTypes := []string{"X-Ray", "MRI", "CT", "Ultrasound"}
	diagnoses := []string{"fracture", "normal", "pneumonia", "tumor", "normal"}

	// 24 records, one every 37 days from January 2023, patients 5..10
	imageID := int64(1)
	start := time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		recordID := int64(i + 1)
		testDate := start.AddDate(0, 0, 37*i)
		ds.Records = append(ds.Records, RadiologyRecord{
			RecordID:        recordID,
			PatientID:       int64(5 + i%6),
			DoctorID:        int64(1 + i%2),
			RadiologistID:   int64(3 + i%2),
			TestType:        testTypes[i%len(testTypes)],
			PrescribingDate: testDate.AddDate(0, 0, -7),
			TestDate:        testDate,
			Diagnosis:       diagnoses[i%len(diagnoses)],
			Description:     fmt.Sprintf("%s study %d", testTypes[i%len(testTypes)], recordID),
		})
		// every third record has two images
		images := 1
		if i%3 == 0 {
			images = 2
		}
		for n := 0; n < images; n++ {
			ds.Images = append(ds.Images, ImageRecord{ImageID: imageID, RecordID: recordID})
			imageID++
		}
	}

	return ds
}

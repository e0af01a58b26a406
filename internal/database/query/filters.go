// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Role is the users.user_class code.
type Role string

const (
	RoleDoctor      Role = "d"
	RoleRadiologist Role = "r"
	RolePatient     Role = "p"
)

// ErrInvalidRole is returned for user classes that have no person selector.
var ErrInvalidRole = errors.New("invalid user role")

// ParseRole accepts a role code (d, r, p) or its name (doctor, radiologist, patient).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "doctor":
		return RoleDoctor, nil
	case "r", "radiologist":
		return RoleRadiologist, nil
	case "p", "patient":
		return RolePatient, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleDoctor:
		return "doctor"
	case RoleRadiologist:
		return "radiologist"
	case RolePatient:
		return "patient"
	default:
		return string(r)
	}
}

// AllDiagnoses is the diagnosis value meaning "do not filter by diagnosis".
const AllDiagnoses = "all"

// Names are nullable in the persons table; they come back as empty strings.
const (
	firstNameColumn = "COALESCE(p.first_name, '') AS first_name"
	lastNameColumn  = "COALESCE(p.last_name, '') AS last_name"
)

// personColumns are the persons columns every person lookup returns.
var personColumns = []string{"p.person_id", firstNameColumn, lastNameColumn, "p.phone"}

// PersonsByRole selects persons holding a user account of the given class.
func PersonsByRole(d Dialect, role Role) (string, []any, error) {
	return d.Select(personColumns...).
		Distinct().
		From("persons p").
		Join("users u ON u.person_id = p.person_id").
		Where(sq.Eq{"u.user_class": string(role)}).
		OrderBy("p.person_id").
		ToSql()
}

// AllPersons selects every person.
func AllPersons(d Dialect) (string, []any, error) {
	return d.Select(personColumns...).
		From("persons p").
		OrderBy("p.person_id").
		ToSql()
}

// DistinctDiagnoses selects each recorded diagnosis once.
func DistinctDiagnoses(d Dialect) (string, []any, error) {
	return d.Select("diagnosis").
		Distinct().
		From("radiology_record").
		Where(sq.NotEq{"diagnosis": nil}).
		OrderBy("diagnosis").
		ToSql()
}

// ReportFilter holds the report generator's criteria.
// Both dates are inclusive calendar days; nil means unbounded.
type ReportFilter struct {
	Diagnosis string
	StartDate *time.Time
	EndDate   *time.Time
}

// filtersDiagnosis reports whether the filter restricts diagnosis.
func (f ReportFilter) filtersDiagnosis() bool {
	return f.Diagnosis != "" && f.Diagnosis != AllDiagnoses
}

// conditions returns the WHERE predicates of f.
func (f ReportFilter) conditions(d Dialect) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if f.filtersDiagnosis() {
		conds = append(conds, sq.Eq{"r.diagnosis": f.Diagnosis})
	}
	if f.StartDate != nil {
		conds = append(conds, sq.GtOrEq{"r.test_date": d.DateArg(startOfDay(*f.StartDate))})
	}
	if f.EndDate != nil {
		// strictly before the following day keeps the whole end day
		conds = append(conds, sq.Lt{"r.test_date": d.DateArg(startOfDay(*f.EndDate).AddDate(0, 0, 1))})
	}
	return conds
}

// PatientReport selects patients' records matching f, oldest test first.
func PatientReport(d Dialect, f ReportFilter) (string, []any, error) {
	qb := d.Select("p.person_id", lastNameColumn, firstNameColumn, "p.phone", "r.test_date").
		From("persons p").
		Join("radiology_record r ON r.patient_id = p.person_id")

	for _, cond := range f.conditions(d) {
		qb = qb.Where(cond)
	}

	return qb.OrderBy("r.test_date", "p.person_id").ToSql()
}

func startOfDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

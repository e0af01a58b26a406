// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

package query

import (
	"strings"
)

// DateGranularity selects how finely test dates are grouped.
type DateGranularity string

const (
	GranularityNone  DateGranularity = "none"
	GranularityYear  DateGranularity = "year"
	GranularityMonth DateGranularity = "month"
	GranularityDay   DateGranularity = "day"
)

// Header labels for the aggregate result.
const (
	LabelSubject  = "subject_id"
	LabelCategory = "category"
	LabelYear     = string(PartYear)
	LabelMonth    = string(PartMonth)
	LabelDay      = string(PartDay)
	CountLabel    = "num_rows"
)

// Source columns and tables of the aggregate query.
const (
	subjectColumn  = "r.patient_id"
	categoryColumn = "r.test_type"
	dateColumn     = "r.test_date"
	recordTable    = "radiology_record r"
	imageJoin      = "pacs_images i ON r.record_id = i.record_id"
)

// ParseDateGranularity maps user input to a granularity.
// Matching is case-insensitive; anything unrecognised is GranularityNone.
func ParseDateGranularity(s string) DateGranularity {
	switch g := DateGranularity(strings.ToLower(strings.TrimSpace(s))); g {
	case GranularityYear, GranularityMonth, GranularityDay:
		return g
	default:
		return GranularityNone
	}
}

// datePartsFor returns the nested date parts implied by g.
func datePartsFor(g DateGranularity) []DatePart {
	switch g {
	case GranularityYear:
		return []DatePart{PartYear}
	case GranularityMonth:
		return []DatePart{PartYear, PartMonth}
	case GranularityDay:
		return []DatePart{PartYear, PartMonth, PartDay}
	default:
		return nil
	}
}

// SelectionRequest names the dimensions a data analysis groups by.
type SelectionRequest struct {
	IncludeSubject  bool
	IncludeCategory bool
	DateGranularity DateGranularity
}

// GroupingColumn pairs a SQL expression with its header label.
type GroupingColumn struct {
	Expr  string
	Label string
}

// selectExpr renders the column for a SELECT list.
func (c GroupingColumn) selectExpr() string {
	return c.Expr + " AS " + c.Label
}

// GroupingPlan is the ordered list of grouping columns for one request.
// Order is always subject, category, year, month, day.
type GroupingPlan struct {
	columns []GroupingColumn
}

// NewGroupingPlan derives the grouping plan for req.
func NewGroupingPlan(req SelectionRequest, d Dialect) GroupingPlan {
	var cols []GroupingColumn

	if req.IncludeSubject {
		cols = append(cols, GroupingColumn{Expr: subjectColumn, Label: LabelSubject})
	}
	if req.IncludeCategory {
		cols = append(cols, GroupingColumn{Expr: categoryColumn, Label: LabelCategory})
	}
	for _, part := range datePartsFor(req.DateGranularity) {
		cols = append(cols, GroupingColumn{
			Expr:  d.DatePart(part, dateColumn),
			Label: string(part),
		})
	}

	return GroupingPlan{columns: cols}
}

// Columns returns a copy of the plan's columns.
func (p GroupingPlan) Columns() []GroupingColumn {
	out := make([]GroupingColumn, len(p.columns))
	copy(out, p.columns)
	return out
}

// Len returns the number of grouping columns.
func (p GroupingPlan) Len() int {
	return len(p.columns)
}

// IsEmpty reports whether the plan groups by nothing.
func (p GroupingPlan) IsEmpty() bool {
	return len(p.columns) == 0
}

// Exprs returns the grouping SQL expressions in plan order.
func (p GroupingPlan) Exprs() []string {
	out := make([]string, len(p.columns))
	for i, c := range p.columns {
		out[i] = c.Expr
	}
	return out
}

// Labels returns the grouping labels in plan order.
func (p GroupingPlan) Labels() []string {
	out := make([]string, len(p.columns))
	for i, c := range p.columns {
		out[i] = c.Label
	}
	return out
}

// Header returns the result header: grouping labels followed by CountLabel.
func (p GroupingPlan) Header() []string {
	return append(p.Labels(), CountLabel)
}

// BuildAggregateQuery renders the image-count query for plan.
// An empty plan yields a single total count without GROUP BY.
func BuildAggregateQuery(plan GroupingPlan, d Dialect) (string, []any, error) {
	selects := make([]string, 0, plan.Len()+1)
	for _, c := range plan.columns {
		selects = append(selects, c.selectExpr())
	}
	selects = append(selects, "count(*) AS "+CountLabel)

	qb := d.Select(selects...).
		From(recordTable).
		Join(imageJoin)

	if !plan.IsEmpty() {
		labels := plan.Labels()
		qb = qb.GroupBy(labels...).OrderBy(labels...)
	}

	return qb.ToSql()
}

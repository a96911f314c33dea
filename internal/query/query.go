// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query turns a snapshot of leads into one filtered, sorted page.
//
// Run is pure: it never touches the repository and never mutates its input.
// Filtering is conjunctive (search AND status AND source), Total counts the
// filtered leads before paging, and sorting is stable in both directions so
// equal keys keep the order of the input snapshot.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/lead-pulse/models"
)

// compareFunc orders two leads by a single attribute.
type compareFunc func(a, b models.Lead) int

var sortFields = map[string]compareFunc{
	"id":         func(a, b models.Lead) int { return cmp.Compare(a.ID, b.ID) },
	"firstName":  byText(func(l models.Lead) string { return l.FirstName }),
	"lastName":   byText(func(l models.Lead) string { return l.LastName }),
	"email":      byText(func(l models.Lead) string { return l.Email }),
	"phone":      byText(func(l models.Lead) string { return l.Phone }),
	"company":    byText(func(l models.Lead) string { return l.Company }),
	"jobTitle":   byText(func(l models.Lead) string { return l.JobTitle }),
	"status":     byText(func(l models.Lead) string { return l.Status }),
	"source":     byText(func(l models.Lead) string { return l.Source }),
	"notes":      byText(func(l models.Lead) string { return l.Notes }),
	"assignedTo": compareAssignee,
	"createdAt":  func(a, b models.Lead) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"updatedAt":  func(a, b models.Lead) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
}

// IsSortable reports whether leads can be sorted by field.
func IsSortable(field string) bool {
	_, ok := sortFields[field]
	return ok
}

// SortableFields lists the accepted sort keys in alphabetical order.
func SortableFields() []string {
	fields := make([]string, 0, len(sortFields))
	for field := range sortFields {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Validate applies defaults to q and reports the first invalid option.
func Validate(q models.LeadQuery) (models.LeadQuery, error) {
	q = q.WithDefaults()

	if q.Limit < 0 {
		return q, ErrInvalidLimit
	}
	if q.Offset < 0 {
		return q, ErrInvalidOffset
	}
	if !IsSortable(q.SortBy) {
		return q, fmt.Errorf("%w: %q", ErrUnknownSortField, q.SortBy)
	}
	if q.SortOrder != models.SortAsc && q.SortOrder != models.SortDesc {
		return q, fmt.Errorf("%w: %q", ErrInvalidSortOrder, q.SortOrder)
	}

	return q, nil
}

// Run filters, sorts and pages leads according to q.
func Run(leads []models.Lead, q models.LeadQuery) (models.LeadPage, error) {
	q, err := Validate(q)
	if err != nil {
		return models.LeadPage{}, err
	}

	filtered := filter(leads, q)
	total := len(filtered)

	compare := sortFields[q.SortBy]
	if q.SortOrder == models.SortDesc {
		asc := compare
		compare = func(a, b models.Lead) int { return asc(b, a) }
	}
	slices.SortStableFunc(filtered, compare)

	return models.LeadPage{
		Leads: page(filtered, q.Offset, q.Limit),
		Total: total,
	}, nil
}

func filter(leads []models.Lead, q models.LeadQuery) []models.Lead {
	search := strings.ToLower(q.Search)

	out := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if search != "" && !matchesSearch(lead, search) {
			continue
		}
		if q.Status != "" && lead.Status != q.Status {
			continue
		}
		if q.Source != "" && lead.Source != q.Source {
			continue
		}
		out = append(out, lead.Clone())
	}
	return out
}

func matchesSearch(lead models.Lead, search string) bool {
	for _, field := range []string{lead.FirstName, lead.LastName, lead.Email, lead.Company} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func page(leads []models.Lead, offset, limit int) []models.Lead {
	if offset >= len(leads) {
		return []models.Lead{}
	}
	end := len(leads)
	if limit < end-offset {
		end = offset + limit
	}
	return leads[offset:end]
}

func byText(get func(models.Lead) string) compareFunc {
	return func(a, b models.Lead) int {
		return strings.Compare(get(a), get(b))
	}
}

// compareAssignee orders unassigned leads before assigned ones.
func compareAssignee(a, b models.Lead) int {
	switch {
	case a.AssignedTo == nil && b.AssignedTo == nil:
		return 0
	case a.AssignedTo == nil:
		return -1
	case b.AssignedTo == nil:
		return 1
	default:
		return cmp.Compare(*a.AssignedTo, *b.AssignedTo)
	}
}

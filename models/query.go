// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sort orders accepted by LeadQuery.SortOrder.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Defaults applied to a LeadQuery.
const (
	DefaultLeadSortBy    = "createdAt"
	DefaultLeadSortOrder = SortDesc
	DefaultLeadLimit     = 10
)

// LeadQuery enumerates every option recognized by the lead listing.
type LeadQuery struct {
	// Search is matched case-insensitively against first name, last name,
	// email and company. Empty matches everything.
	Search string `json:"search"`

	// Status and Source are exact-match filters; empty disables them.
	Status string `json:"status"`
	Source string `json:"source"`

	// SortBy names a lead attribute. Empty means DefaultLeadSortBy.
	SortBy string `json:"sortBy"`

	// SortOrder is SortAsc or SortDesc. Empty means DefaultLeadSortOrder.
	SortOrder string `json:"sortOrder"`

	// Limit is the page size. Zero means DefaultLeadLimit.
	Limit int `json:"limit"`

	// Offset is the number of filtered, sorted leads to skip.
	Offset int `json:"offset"`
}

// NewLeadQuery returns a query with every option at its default.
func NewLeadQuery() LeadQuery {
	return LeadQuery{
		SortBy:    DefaultLeadSortBy,
		SortOrder: DefaultLeadSortOrder,
		Limit:     DefaultLeadLimit,
	}
}

// WithDefaults fills unset options with their defaults.
func (q LeadQuery) WithDefaults() LeadQuery {
	if q.SortBy == "" {
		q.SortBy = DefaultLeadSortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = DefaultLeadSortOrder
	}
	if q.Limit == 0 {
		q.Limit = DefaultLeadLimit
	}
	return q
}

// LeadPage is one page of a lead listing. Total counts every lead that
// passed the filters, independent of Limit and Offset.
type LeadPage struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lead statuses used by the bundled client. The set is open: any other
// value supplied by a caller is stored verbatim.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusProposal    = "proposal"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// Lead is a sales prospect tracked by the CRM.
type Lead struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Status    string `json:"status"`
	Source    string `json:"source"`

	// Notes is append-only in practice: new entries are added with a
	// timestamped prefix instead of replacing earlier text.
	Notes string `json:"notes"`

	// AssignedTo references a User ID. It is never set on creation.
	AssignedTo *int64 `json:"assignedTo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the lead.
func (l Lead) Clone() Lead {
	if l.AssignedTo != nil {
		assignee := *l.AssignedTo
		l.AssignedTo = &assignee
	}
	return l
}

// LeadDraft carries the caller-supplied fields of a new lead.
type LeadDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	Status    string `json:"status"`
	Source    string `json:"source"`
	Notes     string `json:"notes"`
}

// LeadPatch describes a partial lead update. Only non-nil fields are applied.
// Identifier and creation timestamp are deliberately absent.
type LeadPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Company   *string `json:"company,omitempty"`
	JobTitle  *string `json:"jobTitle,omitempty"`
	Status    *string `json:"status,omitempty"`
	Source    *string `json:"source,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	// AssignedTo replaces the assignee when non-nil; a zero value clears it.
	AssignedTo *int64 `json:"assignedTo,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p LeadPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Phone == nil && p.Company == nil && p.JobTitle == nil &&
		p.Status == nil && p.Source == nil && p.Notes == nil && p.AssignedTo == nil
}

// Apply merges the non-nil fields of p into lead.
func (p LeadPatch) Apply(lead *Lead) {
	setString(&lead.FirstName, p.FirstName)
	setString(&lead.LastName, p.LastName)
	setString(&lead.Email, p.Email)
	setString(&lead.Phone, p.Phone)
	setString(&lead.Company, p.Company)
	setString(&lead.JobTitle, p.JobTitle)
	setString(&lead.Status, p.Status)
	setString(&lead.Source, p.Source)
	setString(&lead.Notes, p.Notes)

	if p.AssignedTo != nil {
		if *p.AssignedTo == 0 {
			lead.AssignedTo = nil
		} else {
			assignee := *p.AssignedTo
			lead.AssignedTo = &assignee
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/lead-pulse/models"
)

// sampleLeads are the demo prospects loaded into an empty development store.
var sampleLeads = []models.LeadDraft{
	{
		FirstName: "Sarah",
		LastName:  "Williams",
		Email:     "sarah.williams@example.com",
		Phone:     "+1234567890",
		Company:   "Tech Solutions Inc",
		JobTitle:  "Marketing Director",
		Status:    models.LeadStatusNew,
		Source:    "website",
		Notes:     "Interested in our enterprise package",
	},
	{
		FirstName: "John",
		LastName:  "Davis",
		Email:     "john.davis@example.com",
		Phone:     "+1987654321",
		Company:   "Global Marketing Co",
		JobTitle:  "CEO",
		Status:    models.LeadStatusContacted,
		Source:    "referral",
		Notes:     "Referred by existing client",
	},
}

// SeedSampleLeads stores the demo leads and returns them.
func SeedSampleLeads(ctx context.Context, leads LeadRepository) []models.Lead {
	created := make([]models.Lead, 0, len(sampleLeads))
	for _, draft := range sampleLeads {
		created = append(created, leads.CreateLead(ctx, draft))
	}
	return created
}

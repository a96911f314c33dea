// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
)

// noteSeparator separates consecutive note entries.
const noteSeparator = "\n\n"

// leadRepository is the in-memory implementation of [LeadRepository].
type leadRepository struct {
	leads  *table[models.Lead]
	now    func() time.Time
	logger *logger.Logger
}

// NewLeadRepository constructs an empty [LeadRepository].
func NewLeadRepository(logger *logger.Logger, now func() time.Time) LeadRepository {
	logger.Debug().Msg("creating lead repository")
	return &leadRepository{
		leads:  newTable(models.Lead.Clone),
		now:    now,
		logger: logger,
	}
}

// CreateLead stores a lead built from draft. The status is kept verbatim,
// defaulting to "new" when empty; the assignee is never set here.
func (r *leadRepository) CreateLead(_ context.Context, draft models.LeadDraft) models.Lead {
	lead, _ := r.leads.create(func(id int64) models.Lead {
		now := r.now()
		status := draft.Status
		if status == "" {
			status = models.LeadStatusNew
		}
		return models.Lead{
			ID:        id,
			FirstName: draft.FirstName,
			LastName:  draft.LastName,
			Email:     draft.Email,
			Phone:     draft.Phone,
			Company:   draft.Company,
			JobTitle:  draft.JobTitle,
			Status:    status,
			Source:    draft.Source,
			Notes:     draft.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}, nil)
	return lead
}

func (r *leadRepository) GetLead(_ context.Context, id int64) (models.Lead, bool) {
	return r.leads.get(id)
}

func (r *leadRepository) ListLeads(_ context.Context) []models.Lead {
	return r.leads.list()
}

func (r *leadRepository) UpdateLead(_ context.Context, id int64, patch models.LeadPatch) (models.Lead, bool) {
	lead, found, _ := r.leads.update(id, nil, func(l *models.Lead) {
		patch.Apply(l)
		l.UpdatedAt = r.now()
	})
	return lead, found
}

func (r *leadRepository) AppendNote(ctx context.Context, id int64, note string, at time.Time) (models.Lead, bool) {
	entry := at.Format(time.RFC3339) + " - " + note

	lead, found, _ := r.leads.update(id, nil, func(l *models.Lead) {
		if l.Notes == "" {
			l.Notes = entry
		} else {
			l.Notes += noteSeparator + entry
		}
		l.UpdatedAt = r.now()
	})
	if !found {
		logger.FromContext(ctx).Debug().Str("func", "*leadRepository.AppendNote").
			Int64("lead_id", id).Msg("lead is gone, note dropped")
	}
	return lead, found
}

func (r *leadRepository) DeleteLead(_ context.Context, id int64) bool {
	return r.leads.delete(id)
}

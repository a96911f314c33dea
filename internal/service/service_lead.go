// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/metrics"
	"github.com/MKhiriev/lead-pulse/internal/query"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/models"
)

type leadService struct {
	leadRepository store.LeadRepository

	logger *logger.Logger
}

func NewLeadService(leadRepository store.LeadRepository, logger *logger.Logger) LeadService {
	return &leadService{
		leadRepository: leadRepository,
		logger:         logger,
	}
}

// ListLeads runs q over a snapshot of every lead.
func (s *leadService) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadPage, error) {
	page, err := query.Run(s.leadRepository.ListLeads(ctx), q)
	if err != nil {
		return models.LeadPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return page, nil
}

func (s *leadService) GetLead(ctx context.Context, id int64) (models.Lead, error) {
	lead, found := s.leadRepository.GetLead(ctx, id)
	if !found {
		return models.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (s *leadService) CreateLead(ctx context.Context, draft models.LeadDraft) (models.Lead, error) {
	lead := s.leadRepository.CreateLead(ctx, draft)
	logger.FromContext(ctx).Info().Int64("lead_id", lead.ID).Msg("lead created")
	return lead, nil
}

func (s *leadService) UpdateLead(ctx context.Context, id int64, patch models.LeadPatch) (models.Lead, error) {
	lead, found := s.leadRepository.UpdateLead(ctx, id, patch)
	if !found {
		return models.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (s *leadService) DeleteLead(ctx context.Context, id int64) error {
	if !s.leadRepository.DeleteLead(ctx, id) {
		return ErrLeadNotFound
	}
	logger.FromContext(ctx).Info().Int64("lead_id", id).Msg("lead deleted")
	return nil
}

func (s *leadService) CaptureLead(ctx context.Context, source string, draft models.LeadDraft) (models.Lead, error) {
	draft.Status = models.LeadStatusNew
	draft.Source = source

	lead := s.leadRepository.CreateLead(ctx, draft)
	metrics.RecordLeadCaptured(source)
	logger.FromContext(ctx).Info().
		Int64("lead_id", lead.ID).
		Str("source", source).
		Msg("lead captured")

	return lead, nil
}

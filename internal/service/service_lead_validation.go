// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/validators"
	"github.com/MKhiriev/lead-pulse/models"
)

// LeadValidationService checks lead input before it reaches the wrapped
// LeadService.
type LeadValidationService struct {
	inner     LeadService
	validator validators.Validator
}

func NewLeadValidationService() LeadServiceWrapper {
	return &LeadValidationService{
		validator: validators.NewLeadValidator(),
	}
}

func (v *LeadValidationService) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadPage, error) {
	if err := v.validator.Validate(ctx, q); err != nil {
		return models.LeadPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ListLeads(ctx, q)
}

func (v *LeadValidationService) GetLead(ctx context.Context, id int64) (models.Lead, error) {
	if id <= 0 {
		return models.Lead{}, ErrLeadNotFound
	}
	return v.inner.GetLead(ctx, id)
}

func (v *LeadValidationService) CreateLead(ctx context.Context, draft models.LeadDraft) (models.Lead, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Lead{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateLead(ctx, draft)
}

func (v *LeadValidationService) UpdateLead(ctx context.Context, id int64, patch models.LeadPatch) (models.Lead, error) {
	if id <= 0 {
		return models.Lead{}, ErrLeadNotFound
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Lead{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateLead(ctx, id, patch)
}

func (v *LeadValidationService) DeleteLead(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrLeadNotFound
	}
	return v.inner.DeleteLead(ctx, id)
}

func (v *LeadValidationService) CaptureLead(ctx context.Context, source string, draft models.LeadDraft) (models.Lead, error) {
	draft.Source = source
	err := v.validator.Validate(ctx, draft,
		validators.FieldFirstName,
		validators.FieldLastName,
		validators.FieldEmail,
		validators.FieldSource,
	)
	if err != nil {
		return models.Lead{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CaptureLead(ctx, source, draft)
}

func (v *LeadValidationService) Wrap(wrapped LeadService) LeadService {
	v.inner = wrapped
	return v
}

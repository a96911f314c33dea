// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/lead-pulse/internal/query"
	"github.com/MKhiriev/lead-pulse/models"
)

// Field name constants used to scope lead validation.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldStatus    = "status"
	FieldSource    = "source"
	FieldAssignee  = "assigned_to"
	FieldChanges   = "changes"
	FieldQuery     = "query"
	FieldSearch    = "search"
)

// maxSearchLength bounds the free-text search term of a lead query.
const maxSearchLength = 200

// LeadValidator validates [models.LeadDraft], [models.LeadPatch] and
// [models.LeadQuery].
type LeadValidator struct{}

func NewLeadValidator() Validator {
	return &LeadValidator{}
}

func (v *LeadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LeadDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.LeadDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.LeadPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.LeadPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.LeadQuery:
		return v.validateQuery(ctx, value, fields...)
	case *models.LeadQuery:
		return v.validateQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LeadValidator) validateDraft(_ context.Context, draft models.LeadDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(draft.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(draft.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if err := validateEmail(draft.Email); err != nil {
				return err
			}
		case FieldSource:
			if strings.TrimSpace(draft.Source) == "" || strings.ContainsAny(draft.Source, "/?#") {
				return ErrInvalidSource
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LeadValidator) validatePatch(_ context.Context, patch models.LeadPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldFirstName, FieldLastName, FieldEmail, FieldStatus, FieldAssignee}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if patch.FirstName != nil && strings.TrimSpace(*patch.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if patch.LastName != nil && strings.TrimSpace(*patch.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if patch.Email != nil {
				if err := validateEmail(*patch.Email); err != nil {
					return err
				}
			}
		case FieldStatus:
			if patch.Status != nil && strings.TrimSpace(*patch.Status) == "" {
				return ErrEmptyStatus
			}
		case FieldAssignee:
			if patch.AssignedTo != nil && *patch.AssignedTo < 0 {
				return ErrInvalidAssignee
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LeadValidator) validateQuery(_ context.Context, q models.LeadQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSearch, FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldSearch:
			if len(q.Search) > maxSearchLength {
				return ErrInvalidSearchLength
			}
		case FieldQuery:
			if _, err := query.Validate(q); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

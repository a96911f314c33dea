// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/lead-pulse/models"
)

const (
	FieldLeadID = "lead_id"
	FieldTitle  = "title"
)

// TaskValidator validates [models.TaskDraft], [models.TaskPatch] and
// [models.TaskCompletionUpdate].
type TaskValidator struct{}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.TaskDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.TaskPatch:
		if value.Completed == nil {
			return ErrCompletionRequired
		}
		return nil
	case *models.TaskPatch:
		if value.Completed == nil {
			return ErrCompletionRequired
		}
		return nil

	case models.TaskCompletionUpdate:
		if value.Completed == nil {
			return ErrCompletionRequired
		}
		return nil
	case *models.TaskCompletionUpdate:
		if value.Completed == nil {
			return ErrCompletionRequired
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateDraft checks a new task. The lead it points at is deliberately
// not looked up: tasks may outlive or precede their lead.
func (v *TaskValidator) validateDraft(_ context.Context, draft models.TaskDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLeadID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldLeadID:
			if draft.LeadID <= 0 {
				return ErrInvalidLeadID
			}
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

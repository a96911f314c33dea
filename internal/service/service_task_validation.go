// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/validators"
	"github.com/MKhiriev/lead-pulse/models"
)

// TaskValidationService checks task input before it reaches the wrapped
// TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, leadID *int64) ([]models.Task, error) {
	if leadID != nil && *leadID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidLeadID)
	}
	return v.inner.ListTasks(ctx, leadID)
}

func (v *TaskValidationService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	if id <= 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return v.inner.GetTask(ctx, id)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateTask(ctx, draft)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, id int64, completed bool) (models.Task, error) {
	if id <= 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return v.inner.UpdateTask(ctx, id, completed)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTaskNotFound
	}
	return v.inner.DeleteTask(ctx, id)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}

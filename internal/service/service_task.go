// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/models"
)

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListTasks returns every task, or only those of one lead when leadID is set.
func (s *taskService) ListTasks(ctx context.Context, leadID *int64) ([]models.Task, error) {
	return s.taskRepository.ListTasks(ctx, leadID), nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	task, found := s.taskRepository.GetTask(ctx, id)
	if !found {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	task := s.taskRepository.CreateTask(ctx, draft)
	logger.FromContext(ctx).Info().
		Int64("task_id", task.ID).
		Int64("lead_id", task.LeadID).
		Msg("task created")
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id int64, completed bool) (models.Task, error) {
	task, found := s.taskRepository.UpdateTask(ctx, id, models.TaskPatch{Completed: &completed})
	if !found {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if !s.taskRepository.DeleteTask(ctx, id) {
		return ErrTaskNotFound
	}
	return nil
}

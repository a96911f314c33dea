// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
)

// taskRepository is the in-memory implementation of [TaskRepository].
type taskRepository struct {
	tasks  *table[models.Task]
	now    func() time.Time
	logger *logger.Logger
}

// NewTaskRepository constructs an empty [TaskRepository].
func NewTaskRepository(logger *logger.Logger, now func() time.Time) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		tasks:  newTable(models.Task.Clone),
		now:    now,
		logger: logger,
	}
}

func (r *taskRepository) CreateTask(_ context.Context, draft models.TaskDraft) models.Task {
	task, _ := r.tasks.create(func(id int64) models.Task {
		return models.Task{
			ID:          id,
			LeadID:      draft.LeadID,
			Title:       draft.Title,
			Description: draft.Description,
			DueDate:     draft.DueDate,
			Completed:   draft.Completed,
			CreatedAt:   r.now(),
		}
	}, nil)
	return task
}

func (r *taskRepository) GetTask(_ context.Context, id int64) (models.Task, bool) {
	return r.tasks.get(id)
}

func (r *taskRepository) ListTasks(_ context.Context, leadID *int64) []models.Task {
	tasks := r.tasks.list()
	if leadID == nil {
		return tasks
	}

	filtered := tasks[:0]
	for _, task := range tasks {
		if task.LeadID == *leadID {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// UpdateTask applies patch. Tasks carry no modification timestamp.
func (r *taskRepository) UpdateTask(_ context.Context, id int64, patch models.TaskPatch) (models.Task, bool) {
	task, found, _ := r.tasks.update(id, nil, patch.Apply)
	return task, found
}

func (r *taskRepository) DeleteTask(_ context.Context, id int64) bool {
	return r.tasks.delete(id)
}

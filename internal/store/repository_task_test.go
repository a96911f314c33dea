// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaskRepo(t *testing.T) TaskRepository {
	t.Helper()
	return NewTaskRepository(logger.Nop(), newFakeClock().Now)
}

func TestCreateTask_DanglingLeadAllowed(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()
	due := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	task := repo.CreateTask(ctx, models.TaskDraft{LeadID: 999, Title: "Call back", DueDate: &due})

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, int64(999), task.LeadID)
	assert.False(t, task.Completed)
	require.NotNil(t, task.DueDate)
	assert.True(t, due.Equal(*task.DueDate))

	due = due.Add(time.Hour)
	stored, _ := repo.GetTask(ctx, task.ID)
	assert.Equal(t, 9, stored.DueDate.Hour(), "stored due date does not alias the draft")
}

func TestListTasks_ByLead(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	repo.CreateTask(ctx, models.TaskDraft{LeadID: 1, Title: "a"})
	repo.CreateTask(ctx, models.TaskDraft{LeadID: 2, Title: "b"})
	repo.CreateTask(ctx, models.TaskDraft{LeadID: 1, Title: "c"})

	all := repo.ListTasks(ctx, nil)
	assert.Len(t, all, 3)

	leadID := int64(1)
	forLead := repo.ListTasks(ctx, &leadID)
	require.Len(t, forLead, 2)
	assert.Equal(t, "a", forLead[0].Title)
	assert.Equal(t, "c", forLead[1].Title)

	none := int64(3)
	assert.Empty(t, repo.ListTasks(ctx, &none))
}

func TestUpdateTask(t *testing.T) {
	repo := newTestTaskRepo(t)
	ctx := context.Background()

	task := repo.CreateTask(ctx, models.TaskDraft{LeadID: 1, Title: "a"})
	done := true

	updated, ok := repo.UpdateTask(ctx, task.ID, models.TaskPatch{Completed: &done})
	require.True(t, ok)
	assert.True(t, updated.Completed)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "a", updated.Title)

	unchanged, ok := repo.UpdateTask(ctx, task.ID, models.TaskPatch{})
	require.True(t, ok)
	assert.True(t, unchanged.Completed)

	require.True(t, repo.DeleteTask(ctx, task.ID))
	_, ok = repo.UpdateTask(ctx, task.ID, models.TaskPatch{Completed: &done})
	assert.False(t, ok)
	_, ok = repo.GetTask(ctx, task.ID)
	assert.False(t, ok)
}

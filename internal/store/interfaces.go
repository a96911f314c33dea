// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lead-pulse/models"
)

// UserRepository stores user accounts. Usernames are unique and compared
// case-sensitively; uniqueness is checked inside the same critical section
// as the write.
type UserRepository interface {
	// CreateUser assigns an id and timestamps to user and stores it.
	// Returns ErrUsernameTaken when the username is already in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, bool)
	FindUserByUsername(ctx context.Context, username string) (models.User, bool)
	ListUsers(ctx context.Context) []models.User
	UpdateUserApproval(ctx context.Context, id int64, approved bool) (models.User, bool)
	// UpdateUserCredentials replaces username and stored credential.
	// Returns ErrNoUserWasFound for an unknown id and ErrUsernameTaken when
	// another account already uses the username.
	UpdateUserCredentials(ctx context.Context, id int64, username, passwordHash string) (models.User, error)
	DeleteUser(ctx context.Context, id int64) bool
}

// LeadRepository stores leads.
type LeadRepository interface {
	CreateLead(ctx context.Context, draft models.LeadDraft) models.Lead
	GetLead(ctx context.Context, id int64) (models.Lead, bool)
	// ListLeads returns an unfiltered snapshot ordered by id.
	ListLeads(ctx context.Context) []models.Lead
	UpdateLead(ctx context.Context, id int64, patch models.LeadPatch) (models.Lead, bool)
	// AppendNote adds "<RFC3339 at> - note" after the existing notes,
	// separated by a blank line.
	AppendNote(ctx context.Context, id int64, note string, at time.Time) (models.Lead, bool)
	DeleteLead(ctx context.Context, id int64) bool
}

// TaskRepository stores follow-up tasks. The referenced lead is not checked.
type TaskRepository interface {
	CreateTask(ctx context.Context, draft models.TaskDraft) models.Task
	GetTask(ctx context.Context, id int64) (models.Task, bool)
	// ListTasks returns every task, or only those of one lead when leadID
	// is non-nil.
	ListTasks(ctx context.Context, leadID *int64) []models.Task
	UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (models.Task, bool)
	DeleteTask(ctx context.Context, id int64) bool
}

// SessionStorage keeps server-side sessions keyed by their opaque token.
// Expired sessions behave as absent.
type SessionStorage interface {
	Create(ctx context.Context, userID int64, ttl time.Duration) (models.Session, error)
	Get(ctx context.Context, token string) (models.Session, bool)
	Delete(ctx context.Context, token string)
	DeleteByUser(ctx context.Context, userID int64) int
	DeleteExpired(ctx context.Context, now time.Time) int
	Count(ctx context.Context) int
}

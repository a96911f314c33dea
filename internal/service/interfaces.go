// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the lead-pulse server: the
// session authenticator, role gating and the lead, task, user and
// notification operations consumed by the HTTP layer.
//
// Repositories report absence with a boolean; services translate it into
// [ErrLeadNotFound], [ErrTaskNotFound] or [ErrUserNotFound]. Input problems
// are reported as errors wrapping [ErrInvalidDataProvided].
package service

import (
	"context"

	"github.com/MKhiriev/lead-pulse/models"
)

// AuthService registers users and manages their sessions.
type AuthService interface {
	// Register creates an unprivileged, unapproved account and a session
	// for it.
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error)

	// Login checks credentials and opens a new session. An unknown username
	// and a wrong password both yield ErrAuthenticationFailed.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error)

	// Resolve returns the current record of the user owning token.
	Resolve(ctx context.Context, token string) (models.User, error)

	// Logout drops the session. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// SeedAdmin provisions an approved administrator. When the username is
	// already taken the existing account is returned unchanged.
	SeedAdmin(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// AuthorizationGate decides on every request whether the caller may proceed.
type AuthorizationGate interface {
	RequireAuthenticated(ctx context.Context, token string) (models.User, error)
	RequireAdmin(ctx context.Context, token string) (models.User, error)
}

type LeadService interface {
	ListLeads(ctx context.Context, query models.LeadQuery) (models.LeadPage, error)
	GetLead(ctx context.Context, id int64) (models.Lead, error)
	CreateLead(ctx context.Context, draft models.LeadDraft) (models.Lead, error)
	UpdateLead(ctx context.Context, id int64, patch models.LeadPatch) (models.Lead, error)
	DeleteLead(ctx context.Context, id int64) error

	// CaptureLead stores a lead submitted by an external form. The status is
	// forced to "new" and source is stored verbatim.
	CaptureLead(ctx context.Context, source string, draft models.LeadDraft) (models.Lead, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, leadID *int64) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, completed bool) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// UserService covers account administration.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserApproval(ctx context.Context, id int64, approved bool) (models.User, error)
	UpdateUserCredentials(ctx context.Context, id int64, credentials models.Credentials) (models.User, error)

	// DeleteUser removes the account and every session it owns.
	DeleteUser(ctx context.Context, id int64) error
}

type NotificationService interface {
	// SendWhatsApp returns an error only for invalid input. Provider
	// failures are described by a failed result.
	SendWhatsApp(ctx context.Context, msg models.WhatsAppMessage) (models.NotificationResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LeadServiceWrapper defines middleware composition for LeadService.
// Implementations wrap an existing LeadService to add behavior such as
// logging or validating.
type LeadServiceWrapper interface {
	Wrap(LeadService) LeadService
}

// TaskServiceWrapper defines middleware composition for TaskService.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

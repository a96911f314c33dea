// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that may sign in to the CRM.
// The stored password hash is never serialized outward.
type User struct {
	// ID is the monotonically assigned identifier of the account.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash holds the stored credential in `<hex digest>.<hex salt>` form.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to the user administration endpoints.
	IsAdmin bool `json:"isAdmin"`

	// IsApproved reports whether an administrator has approved the account.
	IsApproved bool `json:"isApproved"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credentials is the raw username/password pair received from a client.
// It exists only for the duration of a request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserApprovalUpdate is the body of the admin approval toggle.
type UserApprovalUpdate struct {
	IsApproved bool `json:"isApproved"`
}

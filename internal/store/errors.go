// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Plain absence is reported through a boolean instead.
var (
	// ErrUsernameTaken is returned when creating or renaming an account would
	// give two users the same username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNoUserWasFound is returned by operations that can fail for more than
	// one reason when the target user does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGeneratingToken is returned when the entropy source fails while
	// issuing a session token.
	ErrGeneratingToken = errors.New("error generating session token")
)

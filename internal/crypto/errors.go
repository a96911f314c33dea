// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidStoredCredential is returned when a stored credential does not
	// consist of exactly two non-empty hex parts joined by a single delimiter.
	ErrInvalidStoredCredential = errors.New("invalid stored credential")

	// ErrInvalidParams is returned by NewCredentialManager for scrypt
	// parameters that the key derivation would reject.
	ErrInvalidParams = errors.New("invalid credential parameters")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_manager_mock.go -package=mock

// CredentialManager derives and checks stored password credentials.
// It holds no state besides its tuning parameters and is safe for
// concurrent use.
//
// Stored credentials have the form `<hex digest>.<hex salt>`.
type CredentialManager interface {
	// Hash derives a stored credential for password using a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether supplied matches the stored credential.
	// It returns false for any malformed stored value and never panics.
	Verify(supplied, stored string) bool
}

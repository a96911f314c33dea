// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements password credential handling: salted scrypt
// derivation and constant-time verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// credentialDelimiter joins the digest and the salt. It never appears in
	// hex output, so the stored value splits back unambiguously.
	credentialDelimiter = "."

	// minSaltLength is the lower bound for the random salt size in bytes.
	minSaltLength = 16
)

// Params are the scrypt tuning parameters.
type Params struct {
	// N is the CPU/memory cost. Must be a power of two greater than one.
	N int
	// R is the block size.
	R int
	// P is the parallelization factor.
	P int
	// KeyLength is the derived digest length in bytes.
	KeyLength int
	// SaltLength is the random salt size in bytes; at least 16.
	SaltLength int
}

// DefaultParams returns the parameters used when none are configured:
// N=16384, r=8, p=1, a 64-byte digest and a 16-byte salt.
func DefaultParams() Params {
	return Params{
		N:          16384,
		R:          8,
		P:          1,
		KeyLength:  64,
		SaltLength: 16,
	}
}

// credentialManager is the scrypt implementation of [CredentialManager].
type credentialManager struct {
	params Params
	rand   io.Reader
}

// NewCredentialManager validates params and returns a [CredentialManager].
// Zero-valued fields fall back to [DefaultParams].
func NewCredentialManager(params Params) (CredentialManager, error) {
	params = params.withDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &credentialManager{
		params: params,
		rand:   rand.Reader,
	}, nil
}

// Hash implements [CredentialManager].
func (c *credentialManager) Hash(password string) (string, error) {
	salt := make([]byte, c.params.SaltLength)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	digest, err := c.derive(password, saltHex, c.params.KeyLength)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest) + credentialDelimiter + saltHex, nil
}

// Verify implements [CredentialManager].
//
// The derived digest has the length of the stored one, so both sides are
// always equal in length and the comparison never returns early.
func (c *credentialManager) Verify(supplied, stored string) bool {
	storedDigest, saltHex, err := splitStoredCredential(stored)
	if err != nil {
		return false
	}

	suppliedDigest, err := c.derive(supplied, saltHex, len(storedDigest))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(storedDigest, suppliedDigest) == 1
}

func (c *credentialManager) derive(password, saltHex string, keyLength int) ([]byte, error) {
	digest, err := scrypt.Key([]byte(password), []byte(saltHex), c.params.N, c.params.R, c.params.P, keyLength)
	if err != nil {
		return nil, fmt.Errorf("error deriving key: %w", err)
	}
	return digest, nil
}

// splitStoredCredential parses `<hex digest>.<hex salt>` and returns the
// decoded digest and the salt in its hex form.
func splitStoredCredential(stored string) ([]byte, string, error) {
	parts := strings.Split(stored, credentialDelimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, "", ErrInvalidStoredCredential
	}

	digest, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidStoredCredential, err)
	}
	if _, err = hex.DecodeString(parts[1]); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidStoredCredential, err)
	}

	return digest, parts[1], nil
}

func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.N == 0 {
		p.N = def.N
	}
	if p.R == 0 {
		p.R = def.R
	}
	if p.P == 0 {
		p.P = def.P
	}
	if p.KeyLength == 0 {
		p.KeyLength = def.KeyLength
	}
	if p.SaltLength == 0 {
		p.SaltLength = def.SaltLength
	}
	return p
}

func (p Params) validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be a power of two greater than 1", ErrInvalidParams)
	}
	if p.R <= 0 || p.P <= 0 {
		return fmt.Errorf("%w: r and p must be positive", ErrInvalidParams)
	}
	if p.KeyLength <= 0 {
		return fmt.Errorf("%w: key length must be positive", ErrInvalidParams)
	}
	if p.SaltLength < minSaltLength {
		return fmt.Errorf("%w: salt must be at least %d bytes", ErrInvalidParams, minSaltLength)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown environment or a missing production secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSessionConfigs indicates a non-positive TTL or cleanup
	// interval, or an empty cookie name.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidCredentialsConfigs indicates scrypt parameters the key
	// derivation would reject.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWhatsAppConfigs indicates invalid WhatsApp integration
	// settings (for example, only one of API key and phone id set).
	ErrInvalidWhatsAppConfigs = errors.New("invalid whatsapp configuration")
)

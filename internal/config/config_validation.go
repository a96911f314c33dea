// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged and defaulted [StructuredConfig]
// can be used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}
	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is required in production", ErrInvalidAppConfigs)
	}
	if (cfg.App.AdminUsername == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Session.TTL <= 0 || cfg.Session.CleanupInterval <= 0 || cfg.Session.CookieName == "" {
		return ErrInvalidSessionConfigs
	}

	c := cfg.Credentials
	if c.ScryptN <= 1 || c.ScryptN&(c.ScryptN-1) != 0 {
		return fmt.Errorf("%w: scrypt N must be a power of two greater than 1", ErrInvalidCredentialsConfigs)
	}
	if c.ScryptR <= 0 || c.ScryptP <= 0 || c.KeyLength <= 0 || c.SaltLength < 16 {
		return ErrInvalidCredentialsConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if (cfg.WhatsApp.APIKey == "") != (cfg.WhatsApp.PhoneID == "") {
		return fmt.Errorf("%w: api key and phone id must be set together", ErrInvalidWhatsAppConfigs)
	}
	if u, err := url.Parse(cfg.WhatsApp.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad base url %q", ErrInvalidWhatsAppConfigs, cfg.WhatsApp.BaseURL)
	}
	if cfg.WhatsApp.Timeout <= 0 {
		return ErrInvalidWhatsAppConfigs
	}

	return nil
}

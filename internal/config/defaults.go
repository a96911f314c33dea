// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied to zero-valued fields after all sources are
// merged.
const (
	DefaultHTTPAddress       = "0.0.0.0:3000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultSessionTTL        = 24 * time.Hour
	DefaultCleanupInterval   = 24 * time.Hour
	DefaultSessionCookieName = "lp_session"
	DefaultWhatsAppBaseURL   = "https://graph.facebook.com/v18.0"
	DefaultWhatsAppTimeout   = 10 * time.Second
	DefaultVersion           = "N/A"

	DefaultScryptN    = 16384
	DefaultScryptR    = 8
	DefaultScryptP    = 1
	DefaultKeyLength  = 64
	DefaultSaltLength = 16
)

// developmentSessionSecret signs cookies outside production when no secret
// is configured.
const developmentSessionSecret = "lead-pulse-development-secret"

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
	}
	if cfg.App.SessionSecret == "" && !cfg.App.IsProduction() {
		cfg.App.SessionSecret = developmentSessionSecret
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	setDefault(&cfg.Session.TTL, DefaultSessionTTL)
	setDefault(&cfg.Session.CleanupInterval, DefaultCleanupInterval)
	setDefault(&cfg.Session.CookieName, DefaultSessionCookieName)

	setDefault(&cfg.Credentials.ScryptN, DefaultScryptN)
	setDefault(&cfg.Credentials.ScryptR, DefaultScryptR)
	setDefault(&cfg.Credentials.ScryptP, DefaultScryptP)
	setDefault(&cfg.Credentials.KeyLength, DefaultKeyLength)
	setDefault(&cfg.Credentials.SaltLength, DefaultSaltLength)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.WhatsApp.BaseURL, DefaultWhatsAppBaseURL)
	setDefault(&cfg.WhatsApp.Timeout, DefaultWhatsAppTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Environment names recognised in App.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// lead-pulse server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: environment, session signing secret
	// and bootstrap data.
	App App `envPrefix:"APP_"`

	// Session controls server-side session lifetime and the session cookie.
	Session Session `envPrefix:"SESSION_"`

	// Credentials holds the scrypt parameters for password hashing.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// WhatsApp holds the WhatsApp Cloud API integration settings. The
	// integration is disabled while APIKey or PhoneID is empty.
	WhatsApp WhatsApp `envPrefix:"WHATSAPP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is "development" or "production". Production turns on the
	// Secure cookie attribute and requires a session secret.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// SessionSecret is the HMAC key that signs session cookies.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// AdminUsername and AdminPassword provision the administrator account at
	// startup. Seeding is skipped when either is empty.
	// Env: APP_ADMIN_USERNAME, APP_ADMIN_PASSWORD
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// SeedSampleData loads two demo leads at startup.
	// Env: APP_SEED_SAMPLE_DATA
	SeedSampleData bool `env:"SEED_SAMPLE_DATA"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the process runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Session controls session lifetime.
type Session struct {
	// TTL is the server-side lifetime of a session and the cookie max age.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// CleanupInterval is how often expired sessions are evicted.
	// Env: SESSION_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`
}

// Credentials holds the scrypt cost parameters.
type Credentials struct {
	// Env: CREDENTIALS_SCRYPT_N, CREDENTIALS_SCRYPT_R, CREDENTIALS_SCRYPT_P
	ScryptN int `env:"SCRYPT_N"`
	ScryptR int `env:"SCRYPT_R"`
	ScryptP int `env:"SCRYPT_P"`

	// Env: CREDENTIALS_KEY_LENGTH
	KeyLength int `env:"KEY_LENGTH"`

	// Env: CREDENTIALS_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by CORS, comma separated in
	// the environment. Credentials are allowed for these origins.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// WhatsApp holds the WhatsApp Cloud API settings.
type WhatsApp struct {
	// Env: WHATSAPP_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: WHATSAPP_PHONE_ID
	PhoneID string `env:"PHONE_ID"`

	// BaseURL is the Graph API root, e.g. "https://graph.facebook.com/v18.0".
	// Env: WHATSAPP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single outbound API call.
	// Env: WHATSAPP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Enabled reports whether both API credentials are configured.
func (w WhatsApp) Enabled() bool {
	return w.APIKey != "" && w.PhoneID != ""
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration. An optional .env file in the working directory is loaded
// into the environment first. For each field the first non-zero value wins
// in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

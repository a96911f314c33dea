// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{
			name:   "unknown environment",
			mutate: func(c *StructuredConfig) { c.App.Environment = "staging" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "production without secret",
			mutate: func(c *StructuredConfig) { c.App.Environment = EnvProduction; c.App.SessionSecret = "" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "admin username without password",
			mutate: func(c *StructuredConfig) { c.App.AdminUsername = "admin" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "zero ttl",
			mutate: func(c *StructuredConfig) { c.Session.TTL = 0 },
			want:   ErrInvalidSessionConfigs,
		},
		{
			name:   "scrypt N not a power of two",
			mutate: func(c *StructuredConfig) { c.Credentials.ScryptN = 10000 },
			want:   ErrInvalidCredentialsConfigs,
		},
		{
			name:   "short salt",
			mutate: func(c *StructuredConfig) { c.Credentials.SaltLength = 4 },
			want:   ErrInvalidCredentialsConfigs,
		},
		{
			name:   "empty address",
			mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			want:   ErrInvalidServerConfigs,
		},
		{
			name:   "whatsapp key without phone id",
			mutate: func(c *StructuredConfig) { c.WhatsApp.APIKey = "key" },
			want:   ErrInvalidWhatsAppConfigs,
		},
		{
			name:   "whatsapp relative base url",
			mutate: func(c *StructuredConfig) { c.WhatsApp.BaseURL = "/v18.0" },
			want:   ErrInvalidWhatsAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestApplyDefaults_ProductionKeepsSecretEmpty(t *testing.T) {
	cfg := &StructuredConfig{App: App{Environment: EnvProduction}}
	cfg.applyDefaults()

	assert.Empty(t, cfg.App.SessionSecret)
	assert.True(t, cfg.App.IsProduction())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Session:     Session{CookieName: "custom"},
		Credentials: Credentials{ScryptN: 1024},
	}
	cfg.applyDefaults()

	assert.Equal(t, "custom", cfg.Session.CookieName)
	assert.Equal(t, 1024, cfg.Credentials.ScryptN)
	assert.Equal(t, DefaultScryptR, cfg.Credentials.ScryptR)
}

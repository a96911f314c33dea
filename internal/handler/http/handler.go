// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/validators"
)

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	allowedOrigins []string
	requestTimeout time.Duration

	taskValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie: cookieSettings{
			name:   cfg.Session.CookieName,
			secret: cfg.App.SessionSecret,
			maxAge: cfg.Session.TTL,
			secure: cfg.App.IsProduction(),
		},
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		taskValidator:  validators.NewTaskValidator(),
		logger:         logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/adapter"
	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
)

type Services struct {
	AuthService         AuthService
	AuthorizationGate   AuthorizationGate
	LeadService         LeadService
	TaskService         TaskService
	UserService         UserService
	NotificationService NotificationService
	AppInfoService      AppInfoService
}

// NewServices wires every service over one set of storages. Lead and task
// services are wrapped with their validation decorators.
func NewServices(
	storages *store.Storages,
	credentials crypto.CredentialManager,
	notifier adapter.NotificationAdapter,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, storages.SessionStorage, credentials, cfg.Session, logger)

	return &Services{
		AuthService:       authService,
		AuthorizationGate: NewAuthorizationGate(authService),
		LeadService: NewLeadValidationService().
			Wrap(NewLeadService(storages.LeadRepository, logger)),
		TaskService: NewTaskValidationService().
			Wrap(NewTaskService(storages.TaskRepository, logger)),
		UserService:         NewUserService(storages.UserRepository, storages.SessionStorage, credentials, logger),
		NotificationService: NewNotificationService(notifier, storages.LeadRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}

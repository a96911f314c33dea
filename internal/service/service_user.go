// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/internal/validators"
	"github.com/MKhiriev/lead-pulse/models"
)

type userService struct {
	userRepository store.UserRepository
	sessionStorage store.SessionStorage
	credentials    crypto.CredentialManager
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	sessionStorage store.SessionStorage,
	credentials crypto.CredentialManager,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		sessionStorage: sessionStorage,
		credentials:    credentials,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx), nil
}

func (s *userService) UpdateUserApproval(ctx context.Context, id int64, approved bool) (models.User, error) {
	user, found := s.userRepository.UpdateUserApproval(ctx, id, approved)
	if !found {
		return models.User{}, ErrUserNotFound
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", id).
		Bool("approved", approved).
		Msg("user approval changed")
	return user, nil
}

// UpdateUserCredentials replaces the username and password of an account.
// The password is hashed here; existing sessions stay valid.
func (s *userService) UpdateUserCredentials(ctx context.Context, id int64, credentials models.Credentials) (models.User, error) {
	if err := s.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := s.credentials.Hash(credentials.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.UpdateUserCredentials(ctx, id, credentials.Username, passwordHash)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrUsernameTaken):
		return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
	case err != nil:
		return models.User{}, fmt.Errorf("credentials update ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user credentials updated")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if !s.userRepository.DeleteUser(ctx, id) {
		return ErrUserNotFound
	}

	dropped := s.sessionStorage.DeleteByUser(ctx, id)
	logger.FromContext(ctx).Info().
		Int64("user_id", id).
		Int("sessions_dropped", dropped).
		Msg("user deleted")
	return nil
}

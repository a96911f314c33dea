// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/metrics"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/internal/validators"
	"github.com/MKhiriev/lead-pulse/models"
)

// dummyPassword feeds the verification performed for unknown usernames.
const dummyPassword = "lead-pulse-unknown-user"

// authService is the concrete implementation of AuthService.
// Passwords are checked with the CredentialManager; sessions live in the
// SessionStorage and expire after sessionTTL.
type authService struct {
	userRepository store.UserRepository
	sessionStorage store.SessionStorage
	credentials    crypto.CredentialManager
	validator      validators.Validator

	sessionTTL time.Duration

	// dummyHash is derived once on first use and verified against when a
	// login names an unknown user.
	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given storages.
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	sessionStorage store.SessionStorage,
	credentials crypto.CredentialManager,
	cfg config.Session,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionStorage: sessionStorage,
		credentials:    credentials,
		validator:      validators.NewCredentialsValidator(),
		sessionTTL:     cfg.TTL,
		logger:         logger,
	}
}

// Register validates credentials, hashes the password and atomically
// creates the account, then opens a session for it.
//
// Returns:
//   - ErrInvalidDataProvided (wrapped) if the username or password is empty.
//   - ErrDuplicateUsername (wrapped) if the username is already taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, false)
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.credentials.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, false)
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Info().Str("username", credentials.Username).Msg("registration rejected: username is taken")
			return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
		}
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	metrics.RecordAuthAttempt(metrics.OperationRegister, true)
	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, session, nil
}

// Login authenticates credentials and opens a fresh session.
//
// Unknown usernames still go through a full password verification so that
// both failure causes take comparable time and return the same error.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		metrics.RecordAuthAttempt(metrics.OperationLogin, false)
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, found := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if !found {
		a.credentials.Verify(credentials.Password, a.dummyCredential())
		metrics.RecordAuthAttempt(metrics.OperationLogin, false)
		log.Info().Msg("login failed: unknown username")
		return models.User{}, models.Session{}, ErrAuthenticationFailed
	}

	if !a.credentials.Verify(credentials.Password, user.PasswordHash) {
		metrics.RecordAuthAttempt(metrics.OperationLogin, false)
		log.Info().Int64("user_id", user.ID).Msg("login failed: wrong password")
		return models.User{}, models.Session{}, ErrAuthenticationFailed
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	metrics.RecordAuthAttempt(metrics.OperationLogin, true)
	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return user, session, nil
}

// Resolve maps a session token to the current user record. Unknown or
// expired tokens, and sessions whose user has been deleted, yield
// ErrUnauthenticated.
func (a *authService) Resolve(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthenticated
	}

	session, found := a.sessionStorage.Get(ctx, token)
	if !found {
		return models.User{}, ErrUnauthenticated
	}

	user, found := a.userRepository.GetUser(ctx, session.UserID)
	if !found {
		a.sessionStorage.Delete(ctx, token)
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	if token != "" {
		a.sessionStorage.Delete(ctx, token)
	}
	return nil
}

// SeedAdmin creates the bootstrap administrator. It is a no-op returning
// the existing account when the username is already registered.
func (a *authService) SeedAdmin(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if existing, found := a.userRepository.FindUserByUsername(ctx, credentials.Username); found {
		log.Info().Int64("user_id", existing.ID).Msg("admin account already exists")
		return existing, nil
	}

	passwordHash, err := a.credentials.Hash(credentials.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		IsApproved:   true,
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		if existing, found := a.userRepository.FindUserByUsername(ctx, credentials.Username); found {
			return existing, nil
		}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", admin.ID).Msg("admin account created")
	return admin, nil
}

func (a *authService) openSession(ctx context.Context, userID int64) (models.Session, error) {
	session, err := a.sessionStorage.Create(ctx, userID, a.sessionTTL)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}
	return session, nil
}

func (a *authService) dummyCredential() string {
	a.dummyOnce.Do(func() {
		hash, err := a.credentials.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("dummy credential derivation failed")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
)

// userRepository is the in-memory implementation of [UserRepository].
type userRepository struct {
	users  *table[models.User]
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs an empty [UserRepository].
func NewUserRepository(logger *logger.Logger, now func() time.Time) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  newTable[models.User](nil),
		now:    now,
		logger: logger,
	}
}

// CreateUser stores user under the next id. IsAdmin and IsApproved are taken
// from the argument as-is; deciding them is the caller's job.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := r.users.create(func(id int64) models.User {
		now := r.now()
		user.ID = id
		user.CreatedAt = now
		user.UpdatedAt = now
		return user
	}, usernameGuard(user.Username))
	if err != nil {
		log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
		return models.User{}, err
	}

	return created, nil
}

func (r *userRepository) GetUser(_ context.Context, id int64) (models.User, bool) {
	return r.users.get(id)
}

func (r *userRepository) FindUserByUsername(_ context.Context, username string) (models.User, bool) {
	return r.users.find(func(u models.User) bool {
		return u.Username == username
	})
}

func (r *userRepository) ListUsers(_ context.Context) []models.User {
	return r.users.list()
}

func (r *userRepository) UpdateUserApproval(_ context.Context, id int64, approved bool) (models.User, bool) {
	user, found, _ := r.users.update(id, nil, func(u *models.User) {
		u.IsApproved = approved
		u.UpdatedAt = r.now()
	})
	return user, found
}

func (r *userRepository) UpdateUserCredentials(ctx context.Context, id int64, username, passwordHash string) (models.User, error) {
	user, found, err := r.users.update(id, usernameGuard(username), func(u *models.User) {
		u.Username = username
		u.PasswordHash = passwordHash
		u.UpdatedAt = r.now()
	})
	if !found {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Str("func", "*userRepository.UpdateUserCredentials").
			Int64("user_id", id).Msg("username is taken")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) DeleteUser(_ context.Context, id int64) bool {
	return r.users.delete(id)
}

func usernameGuard(username string) func(models.User) error {
	return func(existing models.User) error {
		if existing.Username == username {
			return ErrUsernameTaken
		}
		return nil
	}
}

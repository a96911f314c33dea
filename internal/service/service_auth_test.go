// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/mock"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = models.Credentials{Username: "alice", Password: "correct horse"}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_CreatesUnprivilegedUserAndSession(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	user, session, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsApproved)
	assert.NotEqual(t, alice.Password, user.PasswordHash)
	assert.Contains(t, user.PasswordHash, ".")

	assert.Len(t, session.Token, 64)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, env.clock.Now().Add(24*time.Hour), session.ExpiresAt)

	resolved, err := env.auth.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	_, _, err = env.auth.Register(ctx, models.Credentials{Username: "alice", Password: "other"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	assert.Len(t, env.storages.UserRepository.ListUsers(ctx), 1)
	assert.Equal(t, 1, env.storages.SessionStorage.Count(ctx))
}

func TestRegister_UsernameIsCaseSensitive(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	_, _, err = env.auth.Register(ctx, models.Credentials{Username: "Alice", Password: "pw"})
	assert.NoError(t, err)
}

func TestRegister_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty username", creds: models.Credentials{Password: "pw"}},
		{name: "empty password", creds: models.Credentials{Username: "bob"}},
		{name: "both empty", creds: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newAuthEnv(t)
			_, _, err := env.auth.Register(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.Empty(t, env.storages.UserRepository.ListUsers(context.Background()))
		})
	}
}

func TestRegister_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialManager(ctrl)
	storages := store.NewStorages(logger.Nop())
	auth := NewAuthService(storages.UserRepository, storages.SessionStorage, credentials, testSessionConfig, logger.Nop())

	credentials.EXPECT().Hash("pw").Return("", errors.New("entropy source exhausted"))

	_, _, err := auth.Register(context.Background(), models.Credentials{Username: "bob", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, storages.UserRepository.ListUsers(context.Background()))
	assert.Zero(t, storages.SessionStorage.Count(context.Background()))
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_ResolvesToSameUser(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, _, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	user, session, err := env.auth.Login(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	resolved, err := env.auth.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestLogin_IssuesFreshTokens(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, first, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)
	_, second, err := env.auth.Login(ctx, alice)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogin_WrongPasswordCreatesNoSession(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)
	before := env.storages.SessionStorage.Count(ctx)

	_, session, err := env.auth.Login(ctx, models.Credentials{Username: "alice", Password: "correct horsE"})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, session.Token)
	assert.Equal(t, before, env.storages.SessionStorage.Count(ctx))
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, _, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	_, _, wrongPassword := env.auth.Login(ctx, models.Credentials{Username: "alice", Password: "nope"})
	_, _, unknownUser := env.auth.Login(ctx, models.Credentials{Username: "mallory", Password: "nope"})

	assert.Equal(t, wrongPassword, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_UnknownUserRunsVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialManager(ctrl)
	storages := store.NewStorages(logger.Nop())
	auth := NewAuthService(storages.UserRepository, storages.SessionStorage, credentials, testSessionConfig, logger.Nop())

	gomock.InOrder(
		credentials.EXPECT().Hash(dummyPassword).Return("aa.bb", nil).Times(1),
		credentials.EXPECT().Verify("pw", "aa.bb").Return(false).Times(2),
	)

	for range 2 {
		_, _, err := auth.Login(context.Background(), models.Credentials{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	}
}

func TestLogin_NoHardCodedBypass(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.auth.SeedAdmin(ctx, models.Credentials{Username: "admin", Password: "s3cure-admin"})
	require.NoError(t, err)

	for _, guess := range []string{"admin", "admin123", "password", ""} {
		_, _, err := env.auth.Login(ctx, models.Credentials{Username: "admin", Password: guess})
		assert.Error(t, err, guess)
	}
}

// ─────────────────────────────────────────────
// Resolve / Logout
// ─────────────────────────────────────────────

func TestResolve_UnknownToken(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.auth.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = env.auth.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolve_ExpiredSession(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, session, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	env.clock.Advance(24*time.Hour - time.Second)
	_, err = env.auth.Resolve(ctx, session.Token)
	require.NoError(t, err)

	env.clock.Advance(time.Second)
	_, err = env.auth.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolve_ReturnsFreshUserRecord(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	user, session, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	_, found := env.storages.UserRepository.UpdateUserApproval(ctx, user.ID, true)
	require.True(t, found)

	resolved, err := env.auth.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, resolved.IsApproved)
}

func TestResolve_DeletedUser(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	user, session, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)
	require.True(t, env.storages.UserRepository.DeleteUser(ctx, user.ID))

	_, err = env.auth.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, env.storages.SessionStorage.Count(ctx))
}

func TestLogout_ThenAnonymous(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, session, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, session.Token))
	_, err = env.auth.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// idempotent
	assert.NoError(t, env.auth.Logout(ctx, session.Token))
	assert.NoError(t, env.auth.Logout(ctx, ""))
}

func TestLogout_KeepsOtherSessions(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, first, err := env.auth.Register(ctx, alice)
	require.NoError(t, err)
	_, second, err := env.auth.Login(ctx, alice)
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, first.Token))

	_, err = env.auth.Resolve(ctx, second.Token)
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// SeedAdmin
// ─────────────────────────────────────────────

func TestSeedAdmin_CreatesApprovedAdmin(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()
	creds := models.Credentials{Username: "admin", Password: "s3cure-admin"}

	admin, err := env.auth.SeedAdmin(ctx, creds)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsApproved)

	user, _, err := env.auth.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)
	assert.True(t, user.IsAdmin)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()
	creds := models.Credentials{Username: "admin", Password: "s3cure-admin"}

	first, err := env.auth.SeedAdmin(ctx, creds)
	require.NoError(t, err)
	second, err := env.auth.SeedAdmin(ctx, creds)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, env.storages.UserRepository.ListUsers(ctx), 1)
}

func TestSeedAdmin_InvalidCredentials(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.auth.SeedAdmin(context.Background(), models.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegister_NeverGrantsAdmin(t *testing.T) {
	env := newAuthEnv(t)

	user, _, err := env.auth.Register(context.Background(), models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

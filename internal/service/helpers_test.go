// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/stretchr/testify/require"
)

// testClock is a settable time source shared by storages and services.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fastParams keeps scrypt cheap enough for unit tests.
var fastParams = crypto.Params{N: 1024, R: 8, P: 1, KeyLength: 32, SaltLength: 16}

func newCredentialManager(t *testing.T) crypto.CredentialManager {
	t.Helper()
	m, err := crypto.NewCredentialManager(fastParams)
	require.NoError(t, err)
	return m
}

var testSessionConfig = config.Session{TTL: 24 * time.Hour}

type authEnv struct {
	clock    *testClock
	storages *store.Storages
	auth     AuthService
	gate     AuthorizationGate
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	clock := newTestClock()
	storages := store.NewStorages(logger.Nop(), store.WithClock(clock.Now))
	auth := NewAuthService(storages.UserRepository, storages.SessionStorage, newCredentialManager(t), testSessionConfig, logger.Nop())

	return &authEnv{
		clock:    clock,
		storages: storages,
		auth:     auth,
		gate:     NewAuthorizationGate(auth),
	}
}

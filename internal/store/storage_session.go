// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
)

// sessionTokenBytes is the amount of entropy in a session token.
const sessionTokenBytes = 32

// sessionStorage is the in-memory implementation of [SessionStorage].
type sessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
	rand     io.Reader
	logger   *logger.Logger
}

// NewSessionStorage constructs an empty [SessionStorage].
func NewSessionStorage(logger *logger.Logger, now func() time.Time) SessionStorage {
	logger.Debug().Msg("creating session storage")
	return &sessionStorage{
		sessions: make(map[string]models.Session),
		now:      now,
		rand:     rand.Reader,
		logger:   logger,
	}
}

// Create issues a session with a fresh random token valid for ttl.
func (s *sessionStorage) Create(_ context.Context, userID int64, ttl time.Duration) (models.Session, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := io.ReadFull(s.rand, raw); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}

	now := s.now()
	session := models.Session{
		Token:     hex.EncodeToString(raw),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

func (s *sessionStorage) Get(_ context.Context, token string) (models.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || session.Expired(s.now()) {
		return models.Session{}, false
	}
	return session, true
}

func (s *sessionStorage) Delete(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// DeleteByUser drops every session of userID and returns how many were
// removed.
func (s *sessionStorage) DeleteByUser(_ context.Context, userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// DeleteExpired evicts sessions that expired at or before now.
func (s *sessionStorage) DeleteExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}

	if removed > 0 {
		logger.FromContext(ctx).Debug().Int("removed", removed).Msg("expired sessions evicted")
	}
	return removed
}

func (s *sessionStorage) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/metrics"
	"github.com/MKhiriev/lead-pulse/internal/store"
)

// SessionJanitor evicts expired sessions on a fixed interval and publishes
// the number of live sessions.
type SessionJanitor struct {
	sessions store.SessionStorage
	interval time.Duration
	now      func() time.Time

	// done is closed when the loop started by Run exits.
	done chan struct{}

	logger *logger.Logger
}

func NewSessionJanitor(sessions store.SessionStorage, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the eviction loop. A non-positive interval disables it.
func (j *SessionJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Warn().Msg("session janitor disabled: cleanup interval is not positive")
		close(j.done)
		return
	}

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	go func() {
		defer close(j.done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				j.logger.Info().Msg("session janitor stopped")
				return
			case <-ticker.C:
				j.sweep(ctx)
			}
		}
	}()
}

// Done is closed once the loop has exited.
func (j *SessionJanitor) Done() <-chan struct{} {
	return j.done
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	evicted := j.sessions.DeleteExpired(ctx, j.now())
	active := j.sessions.Count(ctx)
	metrics.SetActiveSessions(active)

	if evicted > 0 {
		j.logger.Info().
			Int("evicted", evicted).
			Int("active", active).
			Msg("expired sessions evicted")
	}
}

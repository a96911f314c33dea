// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/lead-pulse/internal/logger"
)

// Storages groups every repository of one process. Each call to
// [NewStorages] yields an independent, empty set.
type Storages struct {
	UserRepository UserRepository
	LeadRepository LeadRepository
	TaskRepository TaskRepository
	SessionStorage SessionStorage
}

// Option customizes [NewStorages].
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the time source used for timestamps and session expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewStorages builds the in-memory repositories.
func NewStorages(logger *logger.Logger, opts ...Option) *Storages {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Storages{
		UserRepository: NewUserRepository(logger, o.now),
		LeadRepository: NewLeadRepository(logger, o.now),
		TaskRepository: NewTaskRepository(logger, o.now),
		SessionStorage: NewSessionStorage(logger, o.now),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the set of background jobs over storages.
func NewWorkers(storages *store.Storages, cfg config.Session, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionJanitor(storages.SessionStorage, cfg.CleanupInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the lead-pulse server.
// Workers is the aggregate started once at boot; every Worker stops when
// the context passed to Run is canceled.
package workers

import "context"

// Worker is a background job. Run must not block: implementations spawn
// their own goroutine and return.
type Worker interface {
	Run(ctx context.Context)
}

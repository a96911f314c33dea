// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport.
type Server interface {
	// RunServer serves requests until ctx is canceled or a stop signal
	// arrives, then shuts down gracefully. It returns an error only when
	// the listener could not be started.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}

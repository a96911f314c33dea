// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the lead-pulse server.
//
// It owns the listener lifecycle: startup, SIGINT/SIGTERM/SIGQUIT handling
// and graceful shutdown that lets in-flight requests finish.
package server

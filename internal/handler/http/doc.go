// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the lead-pulse server.
//
// It wires the chi router, the JSON handlers for authentication, leads,
// tasks, user administration, WhatsApp messaging and public lead capture,
// and the middleware chain: panic recovery, request tracing, access
// logging, Prometheus instrumentation, CORS, gzip and the session cookie
// gates. Business rules live in the service layer; this package only
// translates between HTTP and service calls.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the fixed human-readable messages the lead-pulse
// API writes into response bodies, kept in one place so the wording stays
// consistent across handlers.
package app

const (
	// MsgServerRunning is the body of the root health endpoint.
	MsgServerRunning = "Server is running"

	// MsgLoggedOut confirms a logout. It is sent whether or not a session
	// existed.
	MsgLoggedOut = "Logged out successfully"

	// MsgLeadCaptured confirms a lead submitted through the public capture
	// endpoint.
	MsgLeadCaptured = "Lead captured successfully"

	// MsgInternalServerError hides unexpected failures from clients.
	MsgInternalServerError = "internal server error"

	MsgNotFound = "not found"

	MsgInvalidGzip = "invalid gzip data"
)

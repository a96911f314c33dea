// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Error codes reported in a failed NotificationResult that did not come
// from the messaging provider itself.
const (
	NotificationErrNotConfigured = "NOT_CONFIGURED"
	NotificationErrInvalidPhone  = "INVALID_PHONE"
	NotificationErrUnknown       = "UNKNOWN"
)

// WhatsAppMessage is a request to message a phone number, optionally
// recording the message on a lead.
type WhatsAppMessage struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
	LeadID      int64  `json:"leadId,omitempty"`
}

// NotificationResult is the outcome of an outbound message. Provider
// failures are reported here instead of as errors. Details carries the
// provider response of a delivered message, ErrorDetails the response body
// of a rejected one.
type NotificationResult struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	ErrorCode    string          `json:"errorCode,omitempty"`
	Details      json.RawMessage `json:"details,omitempty"`
	ErrorDetails json.RawMessage `json:"errorDetails,omitempty"`
}

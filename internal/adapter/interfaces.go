// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for outbound messaging providers.
//
// The primary abstraction is [NotificationAdapter], which decouples the
// service layer from the provider protocol. The package ships a WhatsApp
// Cloud API implementation ([NewWhatsAppAdapter]) built on resty.
//
// Provider failures are not returned as errors. They are reported as a
// failed [models.NotificationResult] carrying the provider's error code and
// raw response body, see resultFromResponse in errors_mapper.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/lead-pulse/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notification_adapter_mock.go -package=mock

// NotificationAdapter sends text messages through an external provider.
type NotificationAdapter interface {
	// Enabled reports whether provider credentials are configured.
	Enabled() bool

	// SendText delivers body to phone. The outcome, including provider and
	// transport failures, is described by the returned result.
	SendText(ctx context.Context, phone, body string) models.NotificationResult
}

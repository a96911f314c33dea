// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrNotConfigured      = errors.New("whatsapp api credentials are not configured")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

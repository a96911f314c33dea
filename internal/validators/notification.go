// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/lead-pulse/models"
)

const (
	FieldPhoneNumber = "phone_number"
	FieldMessage     = "message"
)

// NotificationValidator validates outbound [models.WhatsAppMessage] values.
type NotificationValidator struct{}

func NewNotificationValidator() Validator {
	return &NotificationValidator{}
}

func (v *NotificationValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var msg models.WhatsAppMessage
	switch value := obj.(type) {
	case models.WhatsAppMessage:
		msg = value
	case *models.WhatsAppMessage:
		msg = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldPhoneNumber, FieldMessage, FieldLeadID}
	}

	for _, f := range fields {
		switch f {
		case FieldPhoneNumber:
			if strings.TrimSpace(msg.PhoneNumber) == "" {
				return ErrEmptyPhoneNumber
			}
			if strings.IndexFunc(msg.PhoneNumber, unicode.IsDigit) < 0 {
				return ErrInvalidPhoneNumber
			}
		case FieldMessage:
			if strings.TrimSpace(msg.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldLeadID:
			if msg.LeadID < 0 {
				return ErrInvalidLeadID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/adapter"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/metrics"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/internal/validators"
	"github.com/MKhiriev/lead-pulse/models"
)

const whatsAppNotePrefix = "WhatsApp message sent: "

type notificationService struct {
	notifier       adapter.NotificationAdapter
	leadRepository store.LeadRepository
	validator      validators.Validator
	now            func() time.Time

	logger *logger.Logger
}

func NewNotificationService(
	notifier adapter.NotificationAdapter,
	leadRepository store.LeadRepository,
	logger *logger.Logger,
) NotificationService {
	return &notificationService{
		notifier:       notifier,
		leadRepository: leadRepository,
		validator:      validators.NewNotificationValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

// SendWhatsApp delivers msg and, when it succeeds and names a lead, records
// the message in that lead's notes. A lead that no longer exists is skipped.
// No repository lock is held while the provider is called.
func (s *notificationService) SendWhatsApp(ctx context.Context, msg models.WhatsAppMessage) (models.NotificationResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, msg); err != nil {
		return models.NotificationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result := s.notifier.SendText(ctx, msg.PhoneNumber, msg.Message)
	metrics.RecordNotification(metrics.ChannelWhatsApp, result.Success)
	if !result.Success {
		log.Warn().Str("error_code", result.ErrorCode).Msg("whatsapp message was not delivered")
		return result, nil
	}

	if msg.LeadID > 0 {
		if _, found := s.leadRepository.AppendNote(ctx, msg.LeadID, whatsAppNotePrefix+msg.Message, s.now()); !found {
			log.Warn().Int64("lead_id", msg.LeadID).Msg("whatsapp note skipped: lead not found")
		}
	}

	return result, nil
}

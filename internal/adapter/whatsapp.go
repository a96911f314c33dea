// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

// maxPhoneDigits is the E.164 limit on the number of digits.
const maxPhoneDigits = 15

type whatsAppAdapter struct {
	client  *utils.HTTPClient
	apiKey  string
	phoneID string
}

// textMessage is the Cloud API payload for a plain text message.
type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// NewWhatsAppAdapter constructs a WhatsApp Cloud API implementation of
// [NotificationAdapter]. Requests go to {BaseURL}/{PhoneID}/messages with the
// API key as a bearer token and are bounded by cfg.Timeout.
//
// An adapter built without credentials is usable: every send reports
// [models.NotificationErrNotConfigured].
func NewWhatsAppAdapter(cfg config.WhatsApp, logger *logger.Logger) NotificationAdapter {
	client := utils.NewHTTPClient(
		utils.WithBaseURL(cfg.BaseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithBearerToken(cfg.APIKey),
	)

	a := &whatsAppAdapter{
		client:  client,
		apiKey:  cfg.APIKey,
		phoneID: cfg.PhoneID,
	}
	logger.Debug().Bool("enabled", a.Enabled()).Msg("creating whatsapp adapter")

	return a
}

// Enabled implements [NotificationAdapter].
func (a *whatsAppAdapter) Enabled() bool {
	return a.apiKey != "" && a.phoneID != ""
}

// SendText implements [NotificationAdapter].
func (a *whatsAppAdapter) SendText(ctx context.Context, phone, body string) models.NotificationResult {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		log.Warn().Msg("whatsapp message skipped: api credentials are not configured")
		return resultFromError(ErrNotConfigured, models.NotificationErrNotConfigured)
	}

	to, err := FormatPhoneNumber(phone)
	if err != nil {
		return resultFromError(err, models.NotificationErrInvalidPhone)
	}

	payload := textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
	}
	payload.Text.Body = body

	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("phoneID", a.phoneID).
		SetBody(payload).
		Post("/{phoneID}/messages")
	if err != nil {
		log.Err(err).Msg("whatsapp request failed")
		return resultFromError(fmt.Errorf("whatsapp request: %w", err), models.NotificationErrUnknown)
	}

	result := resultFromResponse(resp)
	if !result.Success {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("error_code", result.ErrorCode).
			Msg("whatsapp api rejected the message")
		return result
	}

	log.Info().Msg("whatsapp message sent")
	return result
}

// FormatPhoneNumber strips every non-digit from raw and prefixes the result
// with "+". It returns [ErrInvalidPhoneNumber] when no digits remain or
// there are more than 15 of them.
func FormatPhoneNumber(raw string) (string, error) {
	var b strings.Builder
	b.WriteByte('+')
	digits := 0
	for _, r := range raw {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
			digits++
		}
	}

	if digits == 0 || digits > maxPhoneDigits {
		return "", fmt.Errorf("%w: %d digits", ErrInvalidPhoneNumber, digits)
	}

	return b.String(), nil
}

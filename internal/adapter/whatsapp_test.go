// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey  = "test-token"
	testPhoneID = "1234567890"
)

// newTestAdapter creates a whatsAppAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) NotificationAdapter {
	t.Helper()
	return NewWhatsAppAdapter(config.WhatsApp{
		APIKey:  testAPIKey,
		PhoneID: testPhoneID,
		BaseURL: serverURL + "/",
		Timeout: 2 * time.Second,
	}, logger.Nop())
}

// ── SendText ────────────────────────────────────────────────────────────────

func TestSendText_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/"+testPhoneID+"/messages", r.URL.Path)
		assert.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "whatsapp", got["messaging_product"])
		assert.Equal(t, "individual", got["recipient_type"])
		assert.Equal(t, "+15551234567", got["to"])
		assert.Equal(t, "text", got["type"])
		assert.Equal(t, map[string]any{"body": "Hello Sarah"}, got["text"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.SendText(context.Background(), "+1 (555) 123-4567", "Hello Sarah")

	assert.True(t, res.Success)
	assert.Equal(t, "WhatsApp message sent successfully", res.Message)
	assert.Empty(t, res.ErrorCode)
	assert.JSONEq(t, `{"messages":[{"id":"wamid.1"}]}`, string(res.Details))
}

func TestSendText_APIError(t *testing.T) {
	body := `{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.SendText(context.Background(), "15551234567", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to send WhatsApp message: Invalid OAuth access token", res.Message)
	assert.Equal(t, "190", res.ErrorCode)
	assert.JSONEq(t, body, string(res.ErrorDetails))
	assert.Nil(t, res.Details)
}

func TestSendText_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.SendText(context.Background(), "15551234567", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, models.NotificationErrUnknown, res.ErrorCode)
	assert.Equal(t, "Failed to send WhatsApp message: request failed with status code 502", res.Message)
	assert.Equal(t, `"upstream unavailable"`, string(res.ErrorDetails))
}

func TestSendText_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	res := a.SendText(context.Background(), "15551234567", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, models.NotificationErrUnknown, res.ErrorCode)
	assert.Contains(t, res.Message, "Failed to send WhatsApp message: whatsapp request")
	assert.Nil(t, res.ErrorDetails)
}

func TestSendText_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := NewWhatsAppAdapter(config.WhatsApp{BaseURL: srv.URL, Timeout: time.Second}, logger.Nop())
	assert.False(t, a.Enabled())

	res := a.SendText(context.Background(), "15551234567", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, models.NotificationErrNotConfigured, res.ErrorCode)
	assert.False(t, called)
}

func TestSendText_InvalidPhone(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	res := a.SendText(context.Background(), "1234567890123456", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, models.NotificationErrInvalidPhone, res.ErrorCode)
	assert.False(t, called)
}

func TestSendText_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	res := a.SendText(ctx, "15551234567", "hi")

	assert.False(t, res.Success)
	assert.Equal(t, models.NotificationErrUnknown, res.ErrorCode)
}

// ── FormatPhoneNumber ───────────────────────────────────────────────────────

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already formatted", raw: "+15551234567", want: "+15551234567"},
		{name: "punctuation and spaces", raw: "+1 (555) 123-4567", want: "+15551234567"},
		{name: "bare digits", raw: "447700900123", want: "+447700900123"},
		{name: "fifteen digits", raw: "123456789012345", want: "+123456789012345"},
		{name: "sixteen digits", raw: "1234567890123456", wantErr: true},
		{name: "no digits", raw: "call me", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "non-ascii digits ignored", raw: "١٢٣ 42", want: "+42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatPhoneNumber(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

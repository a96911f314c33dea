// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/lead-pulse/models"
	"github.com/go-resty/resty/v2"
)

const (
	sentMessage   = "WhatsApp message sent successfully"
	failurePrefix = "Failed to send WhatsApp message: "
)

// apiErrorBody is the error envelope returned by the Graph API.
type apiErrorBody struct {
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// resultFromResponse converts a completed provider response into a
// [models.NotificationResult].
func resultFromResponse(resp *resty.Response) models.NotificationResult {
	body := rawJSON(resp.Body())

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return models.NotificationResult{
			Success: true,
			Message: sentMessage,
			Details: body,
		}
	}

	message := fmt.Sprintf("request failed with status code %d", resp.StatusCode())
	code := models.NotificationErrUnknown

	var apiErr apiErrorBody
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != nil {
		if apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		if apiErr.Error.Code != nil {
			code = fmt.Sprint(apiErr.Error.Code)
		}
	}

	return failedResult(message, code, body)
}

// resultFromError converts a local or transport error into a failed result.
func resultFromError(err error, code string) models.NotificationResult {
	return failedResult(err.Error(), code, nil)
}

func failedResult(message, code string, details json.RawMessage) models.NotificationResult {
	return models.NotificationResult{
		Success:      false,
		Message:      failurePrefix + message,
		ErrorCode:    code,
		ErrorDetails: details,
	}
}

// rawJSON returns b as a raw JSON value, or the body quoted as a JSON
// string when the provider did not answer with JSON.
func rawJSON(b []byte) json.RawMessage {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" {
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(trimmed)
	return quoted
}

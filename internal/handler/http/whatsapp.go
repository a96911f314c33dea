// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

// sendWhatsApp answers 200 with the result on success. Rejected input and
// provider failures both answer 400 in the same result shape, with
// success set to false.
func (h *Handler) sendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var msg models.WhatsAppMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeFailedResult(w, r, err)
		return
	}

	result, err := h.services.NotificationService.SendWhatsApp(r.Context(), msg)
	if err != nil {
		writeFailedResult(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	utils.WriteJSON(w, result, status)
}

// writeFailedResult reports a client error as a failed NotificationResult.
// Anything else goes through writeError.
func writeFailedResult(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, ErrInvalidJSON) && !errors.Is(err, service.ErrInvalidDataProvided) {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.NotificationResult{Success: false, Message: err.Error()}, http.StatusBadRequest)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/app"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/go-chi/chi/v5"
)

type captureResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Lead    models.Lead `json:"lead"`
}

// captureLead is the public endpoint used by landing pages and ad forms.
func (h *Handler) captureLead(w http.ResponseWriter, r *http.Request) {
	source := chi.URLParam(r, "source")

	var draft models.LeadDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.services.LeadService.CaptureLead(r.Context(), source, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, captureResponse{
		Success: true,
		Message: app.MsgLeadCaptured,
		Lead:    lead,
	}, http.StatusCreated)
}

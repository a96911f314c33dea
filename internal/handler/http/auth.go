// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/app"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// the previous session of this browser is replaced, not kept alive
	if token, ok := h.sessionToken(r); ok {
		if err := h.services.AuthService.Logout(ctx, token); err != nil {
			log.Err(err).Msg("failed to drop previous session")
		}
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := h.sessionToken(r); ok {
		if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, messageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

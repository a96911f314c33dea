// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

type gateFunc func(ctx context.Context, token string) (models.User, error)

// auth lets through any caller holding a live session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.gate(next, h.services.AuthorizationGate.RequireAuthenticated)
}

// admin lets through administrators only.
func (h *Handler) admin(next http.Handler) http.Handler {
	return h.gate(next, h.services.AuthorizationGate.RequireAdmin)
}

// gate resolves the session cookie through require and stores the
// resolved user in the request context. A missing or forged cookie is
// treated as an anonymous caller.
func (h *Handler) gate(next http.Handler, require gateFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := h.sessionToken(r)
		if !ok {
			logger.FromRequest(r).Debug().Msg("no valid session cookie")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		user, err := require(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

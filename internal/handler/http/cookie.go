// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

// cookieSettings describes the session cookie. Its value is
// "<token>.<hex HMAC-SHA256(token, secret)>".
type cookieSettings struct {
	name   string
	secret string
	maxAge time.Duration
	secure bool
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    utils.SignValue(session.Token, h.cookie.secret),
		Path:     "/",
		MaxAge:   int(h.cookie.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the token carried by the request cookie. A missing
// cookie and a bad signature both report false.
func (h *Handler) sessionToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(h.cookie.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return utils.VerifySignedValue(c.Value, h.cookie.secret)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_CreatesUserAndSetsCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/register", models.Credentials{Username: "alice", Password: "secret"})

	require.Equal(t, http.StatusCreated, rec.Code)
	user := decode[models.User](t, rec)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsApproved)
	assert.NotContains(t, rec.Body.String(), "password", "stored credential must never be serialized")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 24*60*60, cookie.MaxAge)

	token, ok := utils.VerifySignedValue(cookie.Value, testSecret)
	require.True(t, ok, "cookie must carry a signed token")
	assert.NotEmpty(t, token)
}

func TestRegister_SecureCookieInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = "production"
	env := newTestEnvWithConfig(t, cfg)

	rec := env.do(t, http.MethodPost, "/api/register", models.Credentials{Username: "alice", Password: "secret"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, sessionCookie(t, rec).Secure)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest},
		{name: "empty username", body: models.Credentials{Password: "secret"}, wantStatus: http.StatusBadRequest},
		{name: "empty password", body: models.Credentials{Username: "bob"}, wantStatus: http.StatusBadRequest},
		{name: "duplicate username", body: models.Credentials{Username: "alice", Password: "other"}, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.register(t, "alice", "secret")

			rec := env.do(t, http.MethodPost, "/api/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, errorMessage(t, rec))
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

// ── login / logout ───────────────────────────────────────────────────────────

func TestLogin_IssuesFreshSession(t *testing.T) {
	env := newTestEnv(t)
	registered, firstCookie := env.register(t, "alice", "secret")

	rec := env.do(t, http.MethodPost, "/api/login", models.Credentials{Username: "alice", Password: "secret"}, firstCookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered.ID, decode[models.User](t, rec).ID)

	secondCookie := sessionCookie(t, rec)
	assert.NotEqual(t, firstCookie.Value, secondCookie.Value)

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/user", nil, firstCookie).Code,
		"the replaced session must be dropped")
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/user", nil, secondCookie).Code)
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "secret")

	for _, creds := range []models.Credentials{
		{Username: "alice", Password: "wrong"},
		{Username: "nobody", Password: "secret"},
	} {
		rec := env.do(t, http.MethodPost, "/api/login", creds)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies(), "failed login must not open a session")
	}
	assert.Equal(t, 1, env.storages.SessionStorage.Count(t.Context()))
}

func TestLogout_EndsSessionAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.register(t, "alice", "secret")

	rec := env.do(t, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := sessionCookie(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/user", nil, cookie).Code)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/logout", nil, cookie).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/logout", nil).Code)
}

// ── current user ─────────────────────────────────────────────────────────────

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	registered, cookie := env.register(t, "alice", "secret")

	rec := env.do(t, http.MethodGet, "/api/user", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered, decode[models.User](t, rec))
}

func TestCurrentUser_RejectsBadCookies(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.register(t, "alice", "secret")
	token, _ := utils.VerifySignedValue(cookie.Value, testSecret)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "unsigned token", cookie: &http.Cookie{Name: testCookieName, Value: token}},
		{name: "signed with another secret", cookie: &http.Cookie{Name: testCookieName, Value: utils.SignValue(token, "other")}},
		{name: "unknown token", cookie: &http.Cookie{Name: testCookieName, Value: utils.SignValue(strings.Repeat("0", 64), testSecret)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cookies []*http.Cookie
			if tt.cookie != nil {
				cookies = append(cookies, tt.cookie)
			}

			rec := env.do(t, http.MethodGet, "/api/user", nil, cookies...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "not authenticated", errorMessage(t, rec))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/mock"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCookieName = "lp_session"
	testSecret     = "handler-test-secret"
)

// testEnv is a full router over fresh in-memory storages. Only the
// WhatsApp provider is mocked.
type testEnv struct {
	handler  *Handler
	router   *chi.Mux
	storages *store.Storages
	services *service.Services
	notifier *mock.MockNotificationAdapter
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Environment:   config.EnvDevelopment,
			SessionSecret: testSecret,
			Version:       "test-version",
		},
		Session: config.Session{
			TTL:        24 * time.Hour,
			CookieName: testCookieName,
		},
		Server: config.Server{
			HTTPAddress:    ":0",
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, testConfig())
}

func newTestEnvWithConfig(t *testing.T, cfg *config.StructuredConfig) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotificationAdapter(ctrl)

	credentials, err := crypto.NewCredentialManager(crypto.Params{N: 1024, R: 8, P: 1, KeyLength: 32, SaltLength: 16})
	require.NoError(t, err)

	storages := store.NewStorages(logger.Nop())
	services, err := service.NewServices(storages, credentials, notifier, cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, cfg, logger.Nop())

	return &testEnv{
		handler:  h,
		router:   h.Init(),
		storages: storages,
		services: services,
		notifier: notifier,
	}
}

// do sends a request through the router. body is encoded as JSON unless it
// is already a string.
func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account over HTTP and returns its session cookie.
func (e *testEnv) register(t *testing.T, username, password string) (models.User, *http.Cookie) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/register", models.Credentials{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[models.User](t, rec), sessionCookie(t, rec)
}

// admin seeds an administrator and logs it in.
func (e *testEnv) admin(t *testing.T) (models.User, *http.Cookie) {
	t.Helper()

	creds := models.Credentials{Username: "admin", Password: "admin-password"}
	_, err := e.services.AuthService.SeedAdmin(context.Background(), creds)
	require.NoError(t, err)

	rec := e.do(t, http.MethodPost, "/api/login", creds)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[models.User](t, rec), sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", testCookieName)
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[struct {
		Message string `json:"message"`
	}](t, rec).Message
}

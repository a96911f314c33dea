// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/lead-pulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureLead(t *testing.T) {
	env := newTestEnv(t)

	draft := leadDraft("Maya", "won", "ignored")
	rec := env.do(t, http.MethodPost, "/api/capture/facebook-ads", draft)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[captureResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Lead captured successfully", resp.Message)
	assert.Positive(t, resp.Lead.ID)
	assert.Equal(t, models.LeadStatusNew, resp.Lead.Status, "captured leads always start as new")
	assert.Equal(t, "facebook-ads", resp.Lead.Source)
	assert.Equal(t, "Maya", resp.Lead.FirstName)

	stored, found := env.storages.LeadRepository.GetLead(t.Context(), resp.Lead.ID)
	require.True(t, found)
	assert.Equal(t, "facebook-ads", stored.Source)
}

func TestCaptureLead_Invalid(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "malformed json", body: `{"firstName"`},
		{name: "missing email", body: models.LeadDraft{FirstName: "Maya", LastName: "Lee"}},
		{name: "missing last name", body: models.LeadDraft{FirstName: "Maya", Email: "maya@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/capture/website", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, errorMessage(t, rec))
		})
	}
}

func TestCaptureLead_MetricLabelsStayBounded(t *testing.T) {
	env := newTestEnv(t)

	capturedSeries := func() int {
		rec := env.do(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		return strings.Count(rec.Body.String(), "leadpulse_leads_captured_total{")
	}

	rec := env.do(t, http.MethodPost, "/api/capture/junk-seed", leadDraft("Maya", "", ""))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	before := capturedSeries()

	for i := 0; i < 200; i++ {
		rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/capture/junk-%d", i), leadDraft("Maya", "", ""))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, fmt.Sprintf("junk-%d", i), decode[captureResponse](t, rec).Lead.Source, "the lead keeps its source verbatim")
	}

	assert.Equal(t, before, capturedSeries())
}

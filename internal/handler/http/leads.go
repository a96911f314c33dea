// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	q, err := leadQueryFromURL(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.LeadService.ListLeads(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getLead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.services.LeadService.GetLead(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lead, http.StatusOK)
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var draft models.LeadDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.services.LeadService.CreateLead(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lead, http.StatusCreated)
}

func (h *Handler) updateLead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.LeadPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.services.LeadService.UpdateLead(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lead, http.StatusOK)
}

func (h *Handler) deleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.LeadService.DeleteLead(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// leadQueryFromURL maps the page-based listing parameters onto a
// LeadQuery. Page counts from 1; the offset is (page-1)*limit. Option
// values themselves are validated by the lead service.
func leadQueryFromURL(values url.Values) (models.LeadQuery, error) {
	q := models.LeadQuery{
		Search:    values.Get("search"),
		Status:    values.Get("status"),
		Source:    values.Get("source"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.LeadQuery{}, ErrInvalidLimit
		}
		q.Limit = limit
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return models.LeadQuery{}, ErrInvalidPage
		}
		page = p
	}

	pageSize := q.Limit
	if pageSize == 0 {
		pageSize = models.DefaultLeadLimit
	}
	if pageSize > 0 {
		if page-1 > math.MaxInt/pageSize {
			return models.LeadQuery{}, ErrInvalidPage
		}
		q.Offset = (page - 1) * pageSize
	}

	return q, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/utils"
	"github.com/MKhiriev/lead-pulse/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	var leadID *int64
	if raw := r.URL.Query().Get("leadId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, ErrInvalidLeadFilter)
			return
		}
		leadID = &id
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), leadID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var draft models.TaskDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

// updateTask toggles completion, the only mutable attribute over HTTP.
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.TaskCompletionUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.taskValidator.Validate(ctx, update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, id, *update.Completed)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

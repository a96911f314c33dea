// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/app"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/query"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	query.ErrInvalidQuery:          http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidID:                   http.StatusBadRequest,
	ErrInvalidPage:                 http.StatusBadRequest,
	ErrInvalidLimit:                http.StatusBadRequest,
	ErrInvalidLeadFilter:           http.StatusBadRequest,

	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,

	service.ErrLeadNotFound: http.StatusNotFound,
	service.ErrTaskNotFound: http.StatusNotFound,
	service.ErrUserNotFound: http.StatusNotFound,

	service.ErrDuplicateUsername: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with {"message": ...}. Unmapped errors
// are reported as a generic internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}

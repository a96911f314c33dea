// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lead-pulse/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.getStatus)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)

		r.Post("/api/capture/{source}", h.captureLead)
	})

	// routes for any signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.currentUser)

		r.Get("/api/leads", h.listLeads)
		r.Post("/api/leads", h.createLead)
		r.Get("/api/leads/{id}", h.getLead)
		r.Patch("/api/leads/{id}", h.updateLead)
		r.Delete("/api/leads/{id}", h.deleteLead)

		r.Get("/api/tasks", h.listTasks)
		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks/{id}", h.getTask)
		r.Patch("/api/tasks/{id}", h.updateTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)

		r.Post("/api/whatsapp/send", h.sendWhatsApp)
	})

	// administration
	router.Group(func(r chi.Router) {
		r.Use(h.admin)

		r.Get("/api/admin/users", h.listUsers)
		r.Patch("/api/admin/users/{id}/approval", h.updateUserApproval)
		r.Patch("/api/admin/users/{id}/credentials", h.updateUserCredentials)
		r.Delete("/api/admin/users/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

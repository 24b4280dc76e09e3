// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scano-io/scanogate/internal/middleware"
	"github.com/scano-io/scanogate/internal/session"
)

// NewRouter assembles the gateway's route tree. Everything under /api/v1
// except login rides behind the session gate; /healthz and /metrics are
// open for probes and scrapers.
func NewRouter(h *Handler, chimw *ChiMiddleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.Compression)
	r.Use(chimw.CORS())

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.RateLimit())

		r.Group(func(r chi.Router) {
			r.Use(chimw.AuthRateLimit())
			r.Post("/auth/login", h.handleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(session.Gate(h.cookies, h.provider))

			r.Post("/auth/logout", h.handleLogout)
			r.Get("/auth/me", h.handleMe)

			r.Route("/themes", func(r chi.Router) {
				r.Get("/", h.handleThemesList)
				r.Post("/", h.handleThemeCreate)
				r.Get("/refs", h.handleThemeRefs)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleThemeDetail)
					r.Patch("/", h.handleThemeUpdate)
					r.Delete("/", h.handleThemeDelete)

					r.Get("/materials", h.handleMaterialsList)
					r.Post("/materials/bulk-delete", h.handleMaterialsBulkDelete)
					r.Patch("/materials/{mid}", h.handleMaterialUpdate)
					r.Delete("/materials/{mid}", h.handleMaterialDelete)

					r.Route("/analytics", func(r chi.Router) {
						r.Get("/authors-age", h.handleAuthorsAge)
						r.Get("/authors-gender", h.handleAuthorsGender)
						r.Get("/countries", h.handleCountries)
						r.Get("/source-types", h.handleSourceTypes)
						r.Get("/sentiment", h.handleSentiment)
					})

					r.Get("/export", h.handleThemeExport)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.handleUsersList)
				r.Post("/", h.handleUserCreate)
				r.Get("/{id}", h.handleUserDetail)
				r.Patch("/{id}", h.handleUserUpdate)
				r.Delete("/{id}", h.handleUserDelete)
				r.Post("/{id}/suspend", h.handleUserSuspend)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", h.handleTagsList)
				r.Post("/", h.handleTagCreate)
				r.Delete("/{id}", h.handleTagDelete)
			})

			r.Route("/rules", func(r chi.Router) {
				r.Get("/", h.handleRulesList)
				r.Post("/", h.handleRuleCreate)
				r.Patch("/{id}", h.handleRuleUpdate)
				r.Delete("/{id}", h.handleRuleDelete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.handleNotificationsList)
				r.Post("/", h.handleNotificationCreate)
				r.Patch("/{id}", h.handleNotificationUpdate)
				r.Delete("/{id}", h.handleNotificationDelete)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/", h.handleSubscriptionsList)
				r.Post("/", h.handleSubscriptionCreate)
				r.Patch("/{id}", h.handleSubscriptionUpdate)
				r.Delete("/{id}", h.handleSubscriptionDelete)
			})

			r.Get("/files/avatar/{id}", h.handleAvatar)
			r.Get("/nav", h.handleNav)
		})
	})

	return r
}

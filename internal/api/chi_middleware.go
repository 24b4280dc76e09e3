// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/scano-io/scanogate/internal/config"
)

// ChiMiddleware builds the chi-ecosystem middleware (CORS, rate limits)
// from gateway configuration.
type ChiMiddleware struct {
	cfg  *config.SecurityConfig
	cors func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory. CORS origins default to
// empty: cross-origin access requires explicit configuration, since the
// session rides on cookies.
func NewChiMiddleware(cfg *config.SecurityConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return &ChiMiddleware{cfg: cfg, cors: corsHandler}
}

// CORS returns the configured CORS middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns per-IP rate limiting for the general API surface.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	requests := m.cfg.RateLimitReqs
	if requests <= 0 {
		requests = 300
	}
	window := m.cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(requests, window, httprate.WithKeyFuncs(httprate.KeyByIP), rateLimitResponder())
}

// AuthRateLimit returns a much tighter per-IP limit for the login endpoint,
// the one surface an attacker can hammer without a session.
func (m *ChiMiddleware) AuthRateLimit() func(http.Handler) http.Handler {
	requests := m.cfg.RateLimitAuth
	if requests <= 0 {
		requests = 10
	}
	return httprate.Limit(requests, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP), rateLimitResponder())
}

func rateLimitResponder() httprate.Option {
	return httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
	})
}

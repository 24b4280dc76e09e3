// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"
	"time"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/models"
)

// loginCookieMaxAge keeps the cookie alive across browser restarts. The
// upstream token's own exp claim is the real session bound; the gate
// middleware rejects expired tokens regardless of cookie lifetime.
const loginCookieMaxAge = 7 * 24 * time.Hour

// handleLogin exchanges credentials upstream and sets the token cookie.
// POST /api/v1/auth/login
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	accessToken, err := h.upstream.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// A rejected login is not a dead session; keep any existing cookie.
		logging.Ctx(r.Context()).Info().Str("email", req.Email).Msg("Login rejected")
		h.respondLoginFailure(w, r, err)
		return
	}

	h.cookies.Set(w, accessToken, loginCookieMaxAge)

	// Warm the profile cache so the first layout render is a cache hit.
	profile, err := h.provider.Profile(r.Context(), accessToken)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Profile warm-up failed after login")
		profile = nil
	}

	respondJSON(w, r, http.StatusOK, models.LoginResponse{AccessToken: accessToken, User: profile})
}

// respondLoginFailure maps login errors: a 401/403 from the upstream means
// bad credentials, not a dead session.
func (h *Handler) respondLoginFailure(w http.ResponseWriter, r *http.Request, err error) {
	if isUnauthorized(err) {
		respondError(w, r, http.StatusUnauthorized, codeAuthentication, "Invalid email or password", nil)
		return
	}
	h.respondFetchError(w, r, err)
}

// handleLogout destroys the session and clears the cookie.
// POST /api/v1/auth/logout
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if tok := token(r); tok != "" {
		h.provider.Destroy(tok)
	}
	h.cookies.Clear(w)
	respondJSON(w, r, http.StatusOK, map[string]bool{"logged_out": true})
}

// handleMe serves the current-user profile from the session provider.
// GET /api/v1/auth/me
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.provider.Profile(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, profile)
}

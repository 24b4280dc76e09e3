// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scano-io/scanogate/internal/models"
)

// handleUsersList fetches all accounts.
// GET /api/v1/users
func (h *Handler) handleUsersList(w http.ResponseWriter, r *http.Request) {
	users, err := h.upstream.ListUsers(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, users)
}

// handleUserDetail fetches one account. The edit form loads current values
// from here; selected rows are never smuggled through cookies.
// GET /api/v1/users/{id}
func (h *Handler) handleUserDetail(w http.ResponseWriter, r *http.Request) {
	user, err := h.upstream.GetUser(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}

// handleUserCreate creates an account.
// POST /api/v1/users
func (h *Handler) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := h.upstream.CreateUser(r.Context(), token(r), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, user)
}

// handleUserUpdate patches an account. Editing your own account invalidates
// the cached profile so the next layout render reflects it.
// PATCH /api/v1/users/{id}
func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UserUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tok := token(r)
	user, err := h.upstream.UpdateUser(r.Context(), tok, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	if profile, perr := h.provider.Profile(r.Context(), tok); perr == nil && profile.ID == user.ID {
		h.provider.Invalidate(tok)
	}

	respondJSON(w, r, http.StatusOK, user)
}

// handleUserDelete deletes an account.
// DELETE /api/v1/users/{id}
func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteUser(r.Context(), token(r), chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

// handleUserSuspend toggles an account's active flag.
// POST /api/v1/users/{id}/suspend
func (h *Handler) handleUserSuspend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Suspend bool `json:"suspend"`
	}
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := h.upstream.SuspendUser(r.Context(), token(r), chi.URLParam(r, "id"), req.Suspend)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}

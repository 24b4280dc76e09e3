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

// GET /api/v1/tags
func (h *Handler) handleTagsList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.upstream.ListTags(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, tags)
}

// POST /api/v1/tags
func (h *Handler) handleTagCreate(w http.ResponseWriter, r *http.Request) {
	var req models.TagCreateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tag, err := h.upstream.CreateTag(r.Context(), token(r), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, tag)
}

// DELETE /api/v1/tags/{id}
func (h *Handler) handleTagDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteTag(r.Context(), token(r), chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

// GET /api/v1/rules
func (h *Handler) handleRulesList(w http.ResponseWriter, r *http.Request) {
	rules, err := h.upstream.ListRules(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rules)
}

// POST /api/v1/rules
func (h *Handler) handleRuleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.RuleRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	rule, err := h.upstream.CreateRule(r.Context(), token(r), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, rule)
}

// PATCH /api/v1/rules/{id}
func (h *Handler) handleRuleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.RuleRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	rule, err := h.upstream.UpdateRule(r.Context(), token(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rule)
}

// DELETE /api/v1/rules/{id}
func (h *Handler) handleRuleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteRule(r.Context(), token(r), chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

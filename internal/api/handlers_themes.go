// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/models"
	"github.com/scano-io/scanogate/internal/refcache"
)

// handleThemesList fetches the theme list and mirrors it into the reference
// cache, so pickers opened right after a dashboard visit are warm.
// GET /api/v1/themes
func (h *Handler) handleThemesList(w http.ResponseWriter, r *http.Request) {
	tok := token(r)
	themes, err := h.upstream.ListThemes(r.Context(), tok)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	if err := h.refs.Put(refcache.Scope(tok), refcache.ProjectRefs(themes)); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Reference cache write failed")
	}

	respondJSON(w, r, http.StatusOK, themes)
}

// handleThemeRefs serves the picker projection from the reference cache,
// falling back to an upstream fetch on a miss. Stale entries are served
// flagged, not dropped.
// GET /api/v1/themes/refs
func (h *Handler) handleThemeRefs(w http.ResponseWriter, r *http.Request) {
	tok := token(r)
	scope := refcache.Scope(tok)

	if result, err := h.refs.Get(scope); err == nil {
		respondCached(w, r, result.Refs, result.Stale)
		return
	} else if !errors.Is(err, refcache.ErrMiss) {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Reference cache read failed")
	}

	themes, err := h.upstream.ListThemes(r.Context(), tok)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	refs := refcache.ProjectRefs(themes)
	if err := h.refs.Put(scope, refs); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Reference cache write failed")
	}
	respondJSON(w, r, http.StatusOK, refs)
}

// handleThemeDetail fetches one theme.
// GET /api/v1/themes/{id}
func (h *Handler) handleThemeDetail(w http.ResponseWriter, r *http.Request) {
	theme, err := h.upstream.GetTheme(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, theme)
}

// handleThemeCreate creates a theme and invalidates the reference cache.
// POST /api/v1/themes
func (h *Handler) handleThemeCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeCreateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tok := token(r)
	theme, err := h.upstream.CreateTheme(r.Context(), tok, &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	h.invalidateRefs(r, tok)
	respondJSON(w, r, http.StatusCreated, theme)
}

// handleThemeUpdate patches a theme and invalidates the reference cache.
// PATCH /api/v1/themes/{id}
func (h *Handler) handleThemeUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tok := token(r)
	theme, err := h.upstream.UpdateTheme(r.Context(), tok, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	h.invalidateRefs(r, tok)
	respondJSON(w, r, http.StatusOK, theme)
}

// handleThemeDelete deletes a theme and invalidates the reference cache.
// DELETE /api/v1/themes/{id}
func (h *Handler) handleThemeDelete(w http.ResponseWriter, r *http.Request) {
	tok := token(r)
	if err := h.upstream.DeleteTheme(r.Context(), tok, chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	h.invalidateRefs(r, tok)
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

// invalidateRefs drops the cached picker projection after any theme
// mutation. The next read refetches.
func (h *Handler) invalidateRefs(r *http.Request, tok string) {
	if err := h.refs.Invalidate(refcache.Scope(tok)); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Reference cache invalidation failed")
	}
}

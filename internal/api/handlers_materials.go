// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scano-io/scanogate/internal/models"
	"github.com/scano-io/scanogate/internal/pagination"
	"github.com/scano-io/scanogate/internal/selection"
)

// handleMaterialsList fetches the full materials list for a theme and cuts
// the requested page. The upstream has no pagination; the frame is computed
// here so every client sees the same clamping rules.
// GET /api/v1/themes/{id}/materials?page=&size=
func (h *Handler) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	materials, err := h.upstream.ListMaterials(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", h.defaultPageSize())
	frame := pagination.NewFrame(page, size, len(materials))

	respondJSON(w, r, http.StatusOK, models.MaterialPage{
		Items:      pagination.Slice(materials, frame),
		Page:       frame.Page,
		PageSize:   frame.PageSize,
		PageCount:  frame.PageCount,
		TotalItems: frame.TotalItems,
	})
}

// handleMaterialUpdate saves an edited tone, tag set or favorite flag.
// PATCH /api/v1/themes/{id}/materials/{mid}
func (h *Handler) handleMaterialUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.MaterialUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	material, err := h.upstream.UpdateMaterial(r.Context(), token(r), chi.URLParam(r, "mid"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, material)
}

// handleMaterialDelete deletes one material.
// DELETE /api/v1/themes/{id}/materials/{mid}
func (h *Handler) handleMaterialDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteMaterial(r.Context(), token(r), chi.URLParam(r, "mid")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

// handleMaterialsBulkDelete deletes the selected materials one by one and
// reports per-id outcomes. Partial failure is a 200 with a Failed list, not
// an error: the client updates its table from exactly this payload.
// POST /api/v1/themes/{id}/materials/bulk-delete
func (h *Handler) handleMaterialsBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req models.BulkDeleteRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ids := selection.FromIDs(req.IDs).IDs()
	if max := h.apiCfg.MaxBulkDelete; max > 0 && len(ids) > max {
		respondError(w, r, http.StatusBadRequest, codeValidation,
			"Too many ids in one bulk delete", map[string]interface{}{"max": max, "got": len(ids)})
		return
	}

	result := selection.BulkDelete(r.Context(), h.upstream, token(r), ids)
	respondJSON(w, r, http.StatusOK, result)
}

func (h *Handler) defaultPageSize() int {
	if h.apiCfg.DefaultPageSize > 0 {
		return h.apiCfg.DefaultPageSize
	}
	return pagination.DefaultPageSize
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

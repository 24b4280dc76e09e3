// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/models"
)

// handleThemeExport proxies a report export. The client shows an optimistic
// pending state and receives either the document or an error envelope; a
// failed export is reported, never silently dropped.
// GET /api/v1/themes/{id}/export?format=docx|pdf
func (h *Handler) handleThemeExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != models.FileFormatDocx && format != models.FileFormatPDF {
		respondError(w, r, http.StatusBadRequest, codeValidation,
			"format must be docx or pdf", map[string]interface{}{"format": format})
		return
	}

	themeID := chi.URLParam(r, "id")
	data, contentType, err := h.upstream.ExportTheme(r.Context(), token(r), themeID, format)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+themeID+"."+extensionFor(format)))
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Export write aborted")
	}
}

func extensionFor(format string) string {
	if format == models.FileFormatExcel {
		return "xlsx"
	}
	return format
}

// handleAvatar proxies a user avatar blob.
// GET /api/v1/files/avatar/{id}
func (h *Handler) handleAvatar(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := h.upstream.Avatar(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=300")
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Avatar write aborted")
	}
}

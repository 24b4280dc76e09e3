// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"

	"github.com/scano-io/scanogate/internal/nav"
)

// handleNav resolves sidebar state for a client path.
// GET /api/v1/nav?path=/kk/{themeId}/analytic
func (h *Handler) handleNav(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		respondError(w, r, http.StatusBadRequest, codeValidation, "path query parameter is required", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, nav.Resolve(path))
}

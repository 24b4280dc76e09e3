// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"
	"time"
)

var startedAt = time.Now()

// handleHealthz reports process liveness. Upstream health is deliberately
// excluded: the gateway is alive even when the upstream is down, and the
// circuit breaker metrics tell that story.
// GET /healthz
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(time.Since(startedAt).Seconds()),
	})
}

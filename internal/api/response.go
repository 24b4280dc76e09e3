// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package api assembles the gateway's HTTP surface: the chi router, the
// request handlers, and the envelope helpers every endpoint responds
// through.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/models"
)

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	respondEnvelope(w, r, status, models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// respondCached writes a success envelope flagged as served from cache.
func respondCached(w http.ResponseWriter, r *http.Request, data interface{}, stale bool) {
	respondEnvelope(w, r, http.StatusOK, models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC(), Cached: true, Stale: stale},
	})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	respondEnvelope(w, r, status, models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: code, Message: message, Details: details},
	})
}

func respondEnvelope(w http.ResponseWriter, r *http.Request, status int, envelope models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}

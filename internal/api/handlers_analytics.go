// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scano-io/scanogate/internal/charts"
	"github.com/scano-io/scanogate/internal/models"
)

// The analytics handlers fetch one upstream aggregate and reshape it into
// the chart config the dashboard renders directly. Which chart kind each
// aggregate feeds is fixed by the dashboard layout, so it is fixed here too.

// GET /api/v1/themes/{id}/analytics/authors-age
func (h *Handler) handleAuthorsAge(w http.ResponseWriter, r *http.Request) {
	h.respondDonut(w, r, h.upstream.AuthorsAge)
}

// GET /api/v1/themes/{id}/analytics/authors-gender
func (h *Handler) handleAuthorsGender(w http.ResponseWriter, r *http.Request) {
	h.respondDonut(w, r, h.upstream.AuthorsGender)
}

// GET /api/v1/themes/{id}/analytics/source-types
func (h *Handler) handleSourceTypes(w http.ResponseWriter, r *http.Request) {
	h.respondDonut(w, r, h.upstream.SourceTypes)
}

// GET /api/v1/themes/{id}/analytics/countries
func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	counts, err := h.upstream.Countries(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, charts.Bar(counts))
}

// GET /api/v1/themes/{id}/analytics/sentiment
func (h *Handler) handleSentiment(w http.ResponseWriter, r *http.Request) {
	points, err := h.upstream.SentimentSeries(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, charts.Line(points))
}

func (h *Handler) respondDonut(w http.ResponseWriter, r *http.Request, fetch func(context.Context, string, string) ([]models.NamedCount, error)) {
	counts, err := fetch(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, charts.Donut(counts))
}

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

// GET /api/v1/notifications
func (h *Handler) handleNotificationsList(w http.ResponseWriter, r *http.Request) {
	plans, err := h.upstream.ListNotificationPlans(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plans)
}

// POST /api/v1/notifications
func (h *Handler) handleNotificationCreate(w http.ResponseWriter, r *http.Request) {
	var req models.NotificationPlanRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	plan, err := h.upstream.CreateNotificationPlan(r.Context(), token(r), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, plan)
}

// PATCH /api/v1/notifications/{id}
func (h *Handler) handleNotificationUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.NotificationPlanRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	plan, err := h.upstream.UpdateNotificationPlan(r.Context(), token(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plan)
}

// DELETE /api/v1/notifications/{id}
func (h *Handler) handleNotificationDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteNotificationPlan(r.Context(), token(r), chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

// GET /api/v1/subscriptions
func (h *Handler) handleSubscriptionsList(w http.ResponseWriter, r *http.Request) {
	subs, err := h.upstream.ListSubscriptions(r.Context(), token(r))
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, subs)
}

// POST /api/v1/subscriptions
func (h *Handler) handleSubscriptionCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SubscriptionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sub, err := h.upstream.CreateSubscription(r.Context(), token(r), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, sub)
}

// PATCH /api/v1/subscriptions/{id}
func (h *Handler) handleSubscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.SubscriptionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sub, err := h.upstream.UpdateSubscription(r.Context(), token(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sub)
}

// DELETE /api/v1/subscriptions/{id}
func (h *Handler) handleSubscriptionDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.upstream.DeleteSubscription(r.Context(), token(r), chi.URLParam(r, "id")); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

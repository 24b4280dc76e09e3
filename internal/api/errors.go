// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"errors"
	"net/http"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/scano"
	"github.com/scano-io/scanogate/internal/session"
)

// Error codes used across the gateway surface.
const (
	codeValidation     = "VALIDATION_ERROR"
	codeAuthentication = "AUTHENTICATION_ERROR"
	codeNotFound       = "NOT_FOUND"
	codeUpstream       = "UPSTREAM_ERROR"
	codeUnavailable    = "UPSTREAM_UNAVAILABLE"
)

// isUnauthorized reports whether an upstream error is a credential
// rejection.
func isUnauthorized(err error) bool {
	return errors.Is(err, scano.ErrUnauthorized)
}

// respondFetchError maps an upstream failure onto the envelope. An upstream
// 401 means the token is dead: the session is destroyed and the cookie
// cleared in the same response, so the client's next navigation lands on
// login instead of looping on a rejected token.
func (h *Handler) respondFetchError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, scano.ErrUnauthorized):
		token := session.TokenFromContext(ctx)
		if token != "" {
			h.provider.Destroy(token)
		}
		h.cookies.Clear(w)
		respondError(w, r, http.StatusUnauthorized, codeAuthentication, "Session rejected by upstream", nil)

	case errors.Is(err, scano.ErrNotFound):
		respondError(w, r, http.StatusNotFound, codeNotFound, "Resource not found", nil)

	case errors.Is(err, scano.ErrUnavailable):
		logging.Ctx(ctx).Warn().Err(err).Msg("Upstream unavailable")
		respondError(w, r, http.StatusServiceUnavailable, codeUnavailable, "Upstream temporarily unavailable", nil)

	default:
		details := map[string]interface{}{}
		var fe *scano.FetchError
		if errors.As(err, &fe) {
			if fe.StatusCode > 0 {
				details["upstream_status"] = fe.StatusCode
			}
			if fe.Body != "" {
				details["upstream_body"] = fe.Body
			}
		}
		logging.Ctx(ctx).Error().Err(err).Msg("Upstream request failed")
		if len(details) == 0 {
			details = nil
		}
		respondError(w, r, http.StatusBadGateway, codeUpstream, "Upstream request failed", details)
	}
}

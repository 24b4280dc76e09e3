// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/refcache"
	"github.com/scano-io/scanogate/internal/scano"
	"github.com/scano-io/scanogate/internal/session"
	"github.com/scano-io/scanogate/internal/validation"
)

// maxRequestBody bounds request payloads. The largest legitimate payload is
// a bulk-delete id list.
const maxRequestBody = 1 << 20

// Handler carries the dependencies behind every gateway endpoint.
type Handler struct {
	upstream scano.API
	provider *session.Provider
	cookies  *session.Cookies
	refs     *refcache.Store
	apiCfg   config.APIConfig
}

// NewHandler wires the gateway handler.
func NewHandler(upstream scano.API, provider *session.Provider, cookies *session.Cookies, refs *refcache.Store, apiCfg config.APIConfig) *Handler {
	return &Handler{
		upstream: upstream,
		provider: provider,
		cookies:  cookies,
		refs:     refs,
		apiCfg:   apiCfg,
	}
}

// decodeRequest decodes and validates a JSON request body. On failure it has
// already written the error envelope; callers just return.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if err == io.EOF {
			respondError(w, r, http.StatusBadRequest, codeValidation, "Request body is required", nil)
			return false
		}
		respondError(w, r, http.StatusBadRequest, codeValidation, fmt.Sprintf("Invalid JSON: %v", err), nil)
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// token returns the session token the gate middleware attached.
func token(r *http.Request) string {
	return session.TokenFromContext(r.Context())
}

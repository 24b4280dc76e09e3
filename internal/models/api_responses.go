// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package models defines the Scanogate domain types and the JSON envelope
// shared by every gateway endpoint. Field names match the upstream Scano
// wire contract (Mongo-style `_id`, snake_case attributes) so the web client
// can consume gateway responses and upstream responses interchangeably.
package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all gateway
// endpoints.
//
// Status is "success" or "error". Data carries the payload; Error is
// populated only when Status is "error".
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z", "cached": true}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
// Cached marks responses served from the reference cache; Stale additionally
// marks cache reads past their TTL, so clients can badge stale pickers
// instead of silently rendering old options.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached,omitempty"`
	Stale     bool      `json:"stale,omitempty"`
}

// APIError is a structured error with a machine-readable code.
//
// Codes used by the gateway:
//   - VALIDATION_ERROR: invalid input parameters
//   - AUTHENTICATION_ERROR: missing/rejected token
//   - NOT_FOUND: resource doesn't exist upstream
//   - UPSTREAM_ERROR: upstream API returned a failure
//   - UPSTREAM_UNAVAILABLE: circuit open or transport failure
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LoginRequest is forwarded verbatim to the upstream login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the upstream-issued bearer token. The gateway also
// sets it as the scano_acess_token cookie for the web client.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *UserProfile `json:"user,omitempty"`
}

// BulkDeleteRequest names the material ids selected for bulk deletion.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

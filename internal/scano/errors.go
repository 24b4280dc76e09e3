// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package scano

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream call outcomes. Handlers map these onto
// envelope error codes; nothing is swallowed into console logs.
var (
	// ErrUnauthorized indicates the upstream rejected the bearer token.
	// The session layer destroys the session when it sees this.
	ErrUnauthorized = errors.New("upstream rejected token")

	// ErrNotFound indicates the requested resource does not exist upstream.
	ErrNotFound = errors.New("resource not found upstream")

	// ErrUnavailable indicates a transport failure or an open circuit.
	ErrUnavailable = errors.New("upstream unavailable")
)

// FetchError is the uniform failure type returned by every fetcher. It keeps
// the upstream status code and a bounded excerpt of the response body so the
// presentation layer has something to surface.
type FetchError struct {
	Entity     string // themes, materials, users, ...
	Operation  string // list, detail, create, update, delete
	StatusCode int    // 0 for transport failures
	Body       string // bounded excerpt of the upstream body
	Err        error  // sentinel or underlying transport error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("scano %s %s: upstream status %d", e.Entity, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("scano %s %s: %v", e.Entity, e.Operation, e.Err)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// bodyExcerptLimit bounds how much of an upstream error body is retained.
const bodyExcerptLimit = 512

// excerpt truncates an upstream body for inclusion in a FetchError.
func excerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		return string(body[:bodyExcerptLimit])
	}
	return string(body)
}

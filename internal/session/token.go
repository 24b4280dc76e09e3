// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiryLeeway avoids racing the upstream on a token that expires
// mid-flight.
const tokenExpiryLeeway = 30 * time.Second

// TokenExpired reports whether the bearer token is a JWT with an exp claim
// already in the past. The signature is NOT verified; the upstream is the
// authority on token validity. This is only a pre-check that saves a doomed
// round trip and lets the gateway clear the cookie immediately.
//
// Opaque or malformed tokens return false and are left for the upstream to
// judge.
func TokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().Add(-tokenExpiryLeeway).After(exp.Time)
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"net/http"
	"time"

	"github.com/scano-io/scanogate/internal/config"
)

// NewServer builds the gateway's http.Server. Write timeout gets headroom
// over the configured request timeout so slow export downloads are not cut
// off mid-stream.
func NewServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      2 * timeout,
		IdleTimeout:       120 * time.Second,
	}
}

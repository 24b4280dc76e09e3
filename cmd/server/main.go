// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package main is the entry point for the Scanogate server.
//
// Scanogate is the session and data-fetch gateway in front of the Scano
// media-monitoring API. It owns the browser session (token cookie, cached
// user profile), shields the upstream behind a rate limiter and circuit
// breaker, caches theme references per session, and exposes the REST
// surface the dashboard consumes: themes, materials with pagination and
// bulk delete, users, tags and rules, notification plans, subscriptions,
// analytics chart data, file proxying, and navigation resolution.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered sources (defaults, config.yaml, env)
//  2. Logging: zerolog, JSON by default
//  3. Badger stores: session profiles and the theme reference cache
//  4. Upstream client: rate-limited HTTP client wrapped in a circuit breaker
//  5. HTTP router: chi with request-id, metrics, compression, CORS
//  6. Supervisor tree: data layer (store maintenance) and api layer (HTTP)
//
// # Configuration
//
// Everything is overridable via environment variables, e.g.
//
//	export SCANO_BASE_URL=https://api.scano.example
//	export SERVER_PORT=8085
//	export SESSION_STORE_PATH=/data/scanogate/sessions
//	export REFCACHE_STORE_PATH=/data/scanogate/refcache
//	./scanogate
//
// # Signal handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops
// accepting connections, in-flight requests drain within the supervisor's
// shutdown timeout, and both badger stores are closed.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/scano-io/scanogate/internal/api"
	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/refcache"
	"github.com/scano-io/scanogate/internal/scano"
	"github.com/scano-io/scanogate/internal/session"
	"github.com/scano-io/scanogate/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("scano_url", cfg.Scano.BaseURL).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Scanogate")

	sessionDB, err := openStore(cfg.Session.StorePath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Session.StorePath).Msg("Failed to open session store")
	}
	defer closeStore(sessionDB, "session")

	refDB, err := openStore(cfg.RefCache.StorePath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.RefCache.StorePath).Msg("Failed to open reference cache store")
	}
	defer closeStore(refDB, "refcache")

	// Upstream client: token-bucket rate limiting inside, circuit breaker
	// outside, so breaker rejections never consume rate-limit tokens.
	upstream := scano.NewCircuitBreakerClient(&cfg.Scano)

	sessionStore := session.NewStore(sessionDB, cfg.Session.ProfileTTL)
	provider := session.NewProvider(sessionStore, upstream)
	cookies := session.NewCookies(&cfg.Session)

	refs := refcache.NewStore(refDB, cfg.RefCache.TTL)

	handler := api.NewHandler(upstream, provider, cookies, refs, cfg.API)
	chimw := api.NewChiMiddleware(&cfg.Security)
	router := api.NewRouter(handler, chimw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(refcache.NewMaintainer("refcache-maintainer", refDB, cfg.RefCache.RefreshInterval))
	tree.AddDataService(refcache.NewMaintainer("session-maintainer", sessionDB, cfg.RefCache.RefreshInterval))

	server := api.NewServer(&cfg.Server, router)
	tree.AddAPIService(supervisor.NewHTTPServerService(server, supervisor.DefaultTreeConfig().ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Scanogate stopped gracefully")
}

// openStore opens a badger database at path. Badger's own logger is
// silenced; store events are logged by the callers.
func openStore(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	return badger.Open(opts)
}

func closeStore(db *badger.DB, name string) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Str("store", name).Msg("Error closing store")
	}
}

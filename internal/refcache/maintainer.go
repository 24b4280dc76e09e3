// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package refcache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/scano-io/scanogate/internal/logging"
)

// Maintainer is a supervised background service that keeps the cache stores
// healthy: it runs Badger value-log GC on an interval so expired session
// profiles and superseded ref entries are reclaimed.
//
// There is no background refetch of the theme list itself: a refetch needs a
// live session token and the gateway never holds tokens outside a request.
// Staleness is surfaced to clients via Result.Stale instead.
type Maintainer struct {
	name     string
	db       *badger.DB
	interval time.Duration
}

// NewMaintainer creates a maintainer over a cache database. The name
// distinguishes maintainers for different stores in supervisor logs.
func NewMaintainer(name string, db *badger.DB, interval time.Duration) *Maintainer {
	if name == "" {
		name = "cache-maintainer"
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Maintainer{name: name, db: db, interval: interval}
}

// String names the service in supervisor logs.
func (m *Maintainer) String() string { return m.name }

// Serve runs the maintenance loop until the context is cancelled. Implements
// suture.Service.
func (m *Maintainer) Serve(ctx context.Context) error {
	logging.Info().Str("maintainer", m.name).Dur("interval", m.interval).Msg("Cache maintainer started")
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info().Msg("Cache maintainer stopped")
			return ctx.Err()
		case <-ticker.C:
			m.collectGarbage()
		}
	}
}

// collectGarbage reclaims value-log space. Badger asks callers to repeat the
// call while it reports progress; ErrNoRewrite means nothing left to do.
func (m *Maintainer) collectGarbage() {
	const discardRatio = 0.5
	for {
		err := m.db.RunValueLogGC(discardRatio)
		if err == nil {
			continue
		}
		if errors.Is(err, badger.ErrNoRewrite) {
			return
		}
		logging.Warn().Err(err).Msg("Badger value log GC failed")
		return
	}
}

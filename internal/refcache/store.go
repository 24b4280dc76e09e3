// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package refcache mirrors the theme list into a small persistent cache so
// form pickers (create-rule, create-user, add-message-theme, archive) render
// without refetching the full theme list. The cache is a mirror, never a
// source of truth: every successful theme-list fetch rewrites it, every
// theme create/edit/delete invalidates it, and reads past TTL are served
// with an explicit stale flag instead of being dropped.
package refcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/metrics"
	"github.com/scano-io/scanogate/internal/models"
)

// ErrMiss indicates no usable cached entry exists.
var ErrMiss = errors.New("refcache miss")

// schemaVersion guards against reading entries written by an older build
// with a different shape. Bump on any change to cachedRefs.
const schemaVersion = 1

const refsKeyPrefix = "refcache:themes:"

// cachedRefs is the stored envelope.
type cachedRefs struct {
	SchemaVersion int               `json:"schema_version"`
	WrittenAt     time.Time         `json:"written_at"`
	Refs          []models.ThemeRef `json:"refs"`
}

// Result is a cache read: the refs plus whether they are past TTL.
type Result struct {
	Refs      []models.ThemeRef
	WrittenAt time.Time
	Stale     bool
}

// Store persists theme refs in BadgerDB, one entry per session scope.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// NewStore creates a reference cache store. ttl marks entries stale without
// evicting them; a hard expiry of 4x ttl is enforced via Badger entry TTL.
func NewStore(db *badger.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Store{db: db, ttl: ttl}
}

func refsKey(scope string) []byte {
	return []byte(refsKeyPrefix + scope)
}

// Scope derives a cache scope from a bearer token. Tokens are scoped
// per-session so one organization's theme list never leaks into another's
// pickers; hashing keeps raw tokens out of the store keys.
func Scope(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Put replaces the cached refs for a scope.
func (s *Store) Put(scope string, refs []models.ThemeRef) error {
	data, err := json.Marshal(&cachedRefs{
		SchemaVersion: schemaVersion,
		WrittenAt:     time.Now(),
		Refs:          refs,
	})
	if err != nil {
		return fmt.Errorf("marshal refs: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(refsKey(scope), data).WithTTL(4 * s.ttl)
		return txn.SetEntry(entry)
	})
}

// Get returns the cached refs for a scope. Entries past TTL are returned
// with Stale set rather than treated as misses; the caller decides whether
// stale refs are good enough (pickers) or a refetch is due.
func (s *Store) Get(scope string) (*Result, error) {
	var cached cachedRefs
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(refsKey(scope))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrMiss
		}
		if err != nil {
			return fmt.Errorf("get refs: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		if errors.Is(err, ErrMiss) {
			metrics.RefCacheMisses.Inc()
		}
		return nil, err
	}

	if cached.SchemaVersion != schemaVersion {
		metrics.RefCacheMisses.Inc()
		return nil, ErrMiss
	}

	stale := time.Since(cached.WrittenAt) > s.ttl
	if stale {
		metrics.RefCacheStaleReads.Inc()
	} else {
		metrics.RefCacheHits.Inc()
	}
	return &Result{Refs: cached.Refs, WrittenAt: cached.WrittenAt, Stale: stale}, nil
}

// Invalidate drops the cached refs for a scope. Called after any theme
// create, edit or delete.
func (s *Store) Invalidate(scope string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(refsKey(scope))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// ProjectRefs cuts the full theme list down to the picker projection,
// preserving upstream order.
func ProjectRefs(themes []models.Theme) []models.ThemeRef {
	refs := make([]models.ThemeRef, len(themes))
	for i, theme := range themes {
		refs[i] = models.ThemeRef{ID: theme.ID, Name: theme.Name}
	}
	return refs
}

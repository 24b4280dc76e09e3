// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package session owns the browser-facing session: the bearer token cookie,
// the cached current-user profile, and the gating middleware that turns a
// missing or rejected token into a redirect (HTML) or 401 (API).
//
// The gateway never mints its own credentials. The upstream issues the JWT;
// the gateway stores it in a cookie, caches the profile keyed by a hash of
// the token, and destroys the session the moment the upstream rejects it.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/models"
)

// ErrProfileNotFound indicates no cached profile exists for the token.
var ErrProfileNotFound = errors.New("profile not cached")

const profileKeyPrefix = "session:profile:"

// cachedProfile is the stored envelope around a profile.
type cachedProfile struct {
	Profile   models.UserProfile `json:"profile"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Store persists cached current-user profiles in BadgerDB, keyed by a hash
// of the bearer token. Raw tokens never touch disk.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// NewStore creates a profile store. ttl bounds how long a cached profile is
// served before the next request refetches it upstream.
func NewStore(db *badger.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{db: db, ttl: ttl}
}

// tokenKey derives the storage key from a bearer token.
func tokenKey(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(profileKeyPrefix + hex.EncodeToString(sum[:]))
}

// Get returns the cached profile for a token, or ErrProfileNotFound when
// absent or expired. Badger's entry TTL handles expiry; FetchedAt is kept
// for logging.
func (s *Store) Get(token string) (*models.UserProfile, error) {
	var cached cachedProfile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tokenKey(token))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		return nil, err
	}
	return &cached.Profile, nil
}

// Put caches a profile for a token with the store's TTL.
func (s *Store) Put(token string, profile *models.UserProfile) error {
	data, err := json.Marshal(&cachedProfile{Profile: *profile, FetchedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(tokenKey(token), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
}

// Delete removes the cached profile for a token. Called on logout and on
// upstream rejection.
func (s *Store) Delete(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(tokenKey(token))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

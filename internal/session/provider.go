// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package session

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/metrics"
	"github.com/scano-io/scanogate/internal/models"
	"github.com/scano-io/scanogate/internal/scano"
)

// ProfileAPI is the slice of the upstream surface the provider needs.
type ProfileAPI interface {
	CurrentUser(ctx context.Context, token string) (*models.UserProfile, error)
}

// Provider serves the current-user profile for a token: cache first, then
// one upstream fetch shared across concurrent callers via singleflight.
// Dashboard layouts historically issued the same profile fetch from several
// widgets at once; here those collapse into a single upstream call.
type Provider struct {
	store *Store
	api   ProfileAPI
	group singleflight.Group
}

// NewProvider creates a profile provider over a store and the upstream API.
func NewProvider(store *Store, api ProfileAPI) *Provider {
	return &Provider{store: store, api: api}
}

// Profile returns the current-user profile for a token. An upstream
// ErrUnauthorized destroys the cached session before returning, so the
// caller only has to clear the cookie.
func (p *Provider) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	if profile, err := p.store.Get(token); err == nil {
		metrics.SessionProfileFetches.WithLabelValues("cache").Inc()
		return profile, nil
	} else if !errors.Is(err, ErrProfileNotFound) {
		logging.Ctx(ctx).Warn().Err(err).Msg("Profile store read failed, falling through to upstream")
	}

	result, err, shared := p.group.Do(string(tokenKey(token)), func() (interface{}, error) {
		profile, err := p.api.CurrentUser(ctx, token)
		if err != nil {
			return nil, err
		}
		if err := p.store.Put(token, profile); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Profile store write failed")
		}
		return profile, nil
	})
	if err != nil {
		if errors.Is(err, scano.ErrUnauthorized) {
			p.Destroy(token)
		}
		return nil, err
	}

	if shared {
		metrics.SessionProfileFetches.WithLabelValues("shared").Inc()
	} else {
		metrics.SessionProfileFetches.WithLabelValues("upstream").Inc()
	}

	profile, ok := result.(*models.UserProfile)
	if !ok {
		return nil, errors.New("profile fetch: unexpected result type")
	}
	return profile, nil
}

// Destroy drops the cached profile for a token and forgets any in-flight
// fetch so the next request starts clean.
func (p *Provider) Destroy(token string) {
	key := string(tokenKey(token))
	p.group.Forget(key)
	if err := p.store.Delete(token); err != nil {
		logging.Warn().Err(err).Msg("Profile store delete failed")
	}
}

// Invalidate drops the cached profile without forgetting in-flight fetches.
// Called after the user edits their own account.
func (p *Provider) Invalidate(token string) {
	if err := p.store.Delete(token); err != nil {
		logging.Warn().Err(err).Msg("Profile store delete failed")
	}
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package scano implements the typed client for the upstream Scano REST API:
// one fetcher per entity (themes, materials, users, tags, rules, notification
// plans, subscriptions, analytics aggregates, file blobs).
//
// Every call takes a context so a caller going away cancels the request
// instead of leaving a late response to land on torn-down state. Every
// failure comes back as a *FetchError carrying the upstream status and a
// body excerpt; nothing is logged-and-forgotten. A client-side rate limiter
// throttles bursts (retyped search boxes and the like), and
// CircuitBreakerClient adds failure isolation on top.
package scano

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/metrics"
)

// API is the full upstream surface consumed by the gateway. Both Client and
// CircuitBreakerClient implement it.
type API interface {
	ThemesAPI
	MaterialsAPI
	UsersAPI
	TagsAPI
	NotificationsAPI
	AnalyticsAPI
	FilesAPI

	// Login exchanges credentials for a bearer token. Unauthenticated.
	Login(ctx context.Context, email, password string) (string, error)
}

// Client is the plain HTTP implementation of API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Ensure Client implements API.
var _ API = (*Client)(nil)

// NewClient creates an upstream API client from config.
func NewClient(cfg *config.ScanoConfig) *Client {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 20
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = int(rps) * 2
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// do performs one authenticated JSON request and decodes the response into
// out (skipped when out is nil). entity/operation feed metrics and errors.
func (c *Client) do(ctx context.Context, entity, operation, method, path, token string, body, out interface{}) error {
	start := time.Now()
	err := c.doRaw(ctx, method, path, token, body, out)
	metrics.ObserveUpstreamRequest(entity, operation, start, err)
	if err != nil {
		if fe, ok := err.(*FetchError); ok {
			fe.Entity = entity
			fe.Operation = operation
		}
		return err
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path, token string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit+1))
		fe := &FetchError{StatusCode: resp.StatusCode, Body: excerpt(raw)}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			fe.Err = ErrUnauthorized
		case http.StatusNotFound:
			fe.Err = ErrNotFound
		default:
			fe.Err = fmt.Errorf("upstream status %d", resp.StatusCode)
		}
		return fe
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// doBlob performs one authenticated request and returns the raw body with
// its content type. Used for avatar and report downloads.
func (c *Client) doBlob(ctx context.Context, entity, operation, path, token string) ([]byte, string, error) {
	start := time.Now()
	data, contentType, err := c.doBlobRaw(ctx, path, token)
	metrics.ObserveUpstreamRequest(entity, operation, start, err)
	if err != nil {
		if fe, ok := err.(*FetchError); ok {
			fe.Entity = entity
			fe.Operation = operation
		}
		return nil, "", err
	}
	return data, contentType, nil
}

func (c *Client) doBlobRaw(ctx context.Context, path, token string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", &FetchError{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", &FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &FetchError{Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit+1))
		fe := &FetchError{StatusCode: resp.StatusCode, Body: excerpt(raw)}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			fe.Err = ErrUnauthorized
		case http.StatusNotFound:
			fe.Err = ErrNotFound
		default:
			fe.Err = fmt.Errorf("upstream status %d", resp.StatusCode)
		}
		return nil, "", fe
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &FetchError{Err: fmt.Errorf("read blob: %w", err)}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, "auth", "login", http.MethodPost, "/auth/login", "", payload, &result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", &FetchError{Entity: "auth", Operation: "login", Err: fmt.Errorf("upstream returned empty token")}
	}
	return result.AccessToken, nil
}

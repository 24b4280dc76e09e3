// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package config loads Scanogate configuration with Koanf v2 using layered
// sources (highest priority wins): environment variables, an optional YAML
// config file, and built-in defaults.
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Scano    ScanoConfig    `koanf:"scano"`
	Server   ServerConfig   `koanf:"server"`
	Session  SessionConfig  `koanf:"session"`
	RefCache RefCacheConfig `koanf:"refcache"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ScanoConfig holds connection settings for the upstream Scano REST API.
// Every resource fetcher builds its request paths from BaseURL; the bearer
// token is supplied per request from the caller's session, never from config.
//
// Environment variables:
//   - SCANO_BASE_URL: upstream API base, e.g. https://api.scano.kz (required)
//   - SCANO_TIMEOUT: per-request timeout (default 30s)
//   - SCANO_RATE_LIMIT_RPS / SCANO_RATE_LIMIT_BURST: client-side throttle
type ScanoConfig struct {
	BaseURL        string        `koanf:"base_url"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimitRPS   float64       `koanf:"rate_limit_rps"`
	RateLimitBurst int           `koanf:"rate_limit_burst"`

	// Circuit breaker thresholds, matching the upstream client defaults.
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
}

// ServerConfig holds the gateway's own HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SessionConfig holds session store settings.
//
// TokenCookie keeps the upstream's historical cookie name (scano_acess_token,
// sic) so existing web clients keep working unchanged.
type SessionConfig struct {
	TokenCookie string        `koanf:"token_cookie"`
	StorePath   string        `koanf:"store_path"`
	ProfileTTL  time.Duration `koanf:"profile_ttl"`
	CookieHTTPS bool          `koanf:"cookie_https"`
}

// RefCacheConfig holds reference-cache (theme list) settings.
type RefCacheConfig struct {
	StorePath       string        `koanf:"store_path"`
	TTL             time.Duration `koanf:"ttl"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// APIConfig holds pagination and response limits for the materials list.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxBulkDelete   int `koanf:"max_bulk_delete"`
}

// SecurityConfig holds CORS and rate limiting for the gateway surface.
type SecurityConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	RateLimitAuth   int           `koanf:"rate_limit_auth"`
}

// LoggingConfig holds log level and output format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks that the loaded configuration is usable. Called by Load().
func (c *Config) Validate() error {
	if c.Scano.BaseURL == "" {
		return fmt.Errorf("scano.base_url is required (SCANO_BASE_URL)")
	}
	u, err := url.Parse(c.Scano.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("scano.base_url %q is not an absolute URL", c.Scano.BaseURL)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Scano.Timeout <= 0 {
		return fmt.Errorf("scano.timeout must be positive")
	}
	if c.Session.TokenCookie == "" {
		return fmt.Errorf("session.token_cookie must not be empty")
	}
	if c.RefCache.TTL <= 0 {
		return fmt.Errorf("refcache.ttl must be positive")
	}
	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("api.default_page_size must be positive")
	}
	return nil
}

// Addr returns the host:port address for the HTTP listener.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Scano.BaseURL = "https://api.scano.example"
	return cfg
}

func TestValidateAcceptsDefaultsWithBaseURL(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing scano.base_url")
	}
}

func TestValidateRejectsRelativeBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Scano.BaseURL = "api.scano.example/v1"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-absolute base URL")
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.Server.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidateRejectsEmptyTokenCookie(t *testing.T) {
	cfg := validConfig()
	cfg.Session.TokenCookie = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty token cookie name")
	}
}

func TestValidateRejectsNonPositiveTTL(t *testing.T) {
	cfg := validConfig()
	cfg.RefCache.TTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero refcache TTL")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	cases := []struct {
		env  string
		want string
	}{
		{"SCANO_BASE_URL", "scano.base_url"},
		{"SCANO_RATE_LIMIT_RPS", "scano.rate_limit_rps"},
		{"SERVER_PORT", "server.port"},
		{"SESSION_TOKEN_COOKIE", "session.token_cookie"},
		{"REFCACHE_TTL", "refcache.ttl"},
		{"SECURITY_CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, c := range cases {
		if got := envTransformFunc(c.env); got != c.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", c.env, got, c.want)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCANO_BASE_URL", "https://api.scano.example")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SECURITY_CORS_ORIGINS", "https://app.scano.example, https://staging.scano.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv(ConfigPathEnvVar, "/nonexistent/config.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scano.BaseURL != "https://api.scano.example" {
		t.Errorf("base URL = %q", cfg.Scano.BaseURL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://staging.scano.example" {
		t.Errorf("cors origins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	// Untouched defaults survive layering.
	if cfg.Session.TokenCookie != "scano_acess_token" {
		t.Errorf("token cookie = %q", cfg.Session.TokenCookie)
	}
	if cfg.Scano.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Scano.Timeout)
	}
}

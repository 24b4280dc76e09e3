// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package scano

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/models"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(&config.ScanoConfig{
		BaseURL:        server.URL,
		Timeout:        5 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})
	return client, server
}

func TestListThemesDecodesWireFormat(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/themes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"t1","name":"Almaty","theme_type":"news","keywords":["flood"],"counters":{"today":{"positive":1,"negative":2,"neutral":3,"total":6}}}]`))
	}))

	themes, err := client.ListThemes(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("ListThemes: %v", err)
	}
	if len(themes) != 1 {
		t.Fatalf("expected 1 theme, got %d", len(themes))
	}
	if themes[0].ID != "t1" || themes[0].Name != "Almaty" {
		t.Errorf("theme = %+v", themes[0])
	}
	if themes[0].Counters.Today.Total != 6 {
		t.Errorf("today total = %d", themes[0].Counters.Today.Total)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	}))

	_, err := client.ListThemes(context.Background(), "stale-token")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", fe.StatusCode)
	}
	if fe.Entity != "themes" || fe.Operation != "list" {
		t.Errorf("entity/operation = %s/%s", fe.Entity, fe.Operation)
	}
	if fe.Body == "" {
		t.Error("expected body excerpt to be retained")
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetTheme(context.Background(), "tok", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	client := NewClient(&config.ScanoConfig{
		BaseURL:      server.URL,
		Timeout:      time.Second,
		RateLimitRPS: 1000,
	})

	_, err := client.ListThemes(context.Background(), "tok")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCreateThemeSendsPayload(t *testing.T) {
	var received models.ThemeCreateRequest
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"t9","name":"Astana"}`))
	}))

	theme, err := client.CreateTheme(context.Background(), "tok", &models.ThemeCreateRequest{
		Name:      "Astana",
		ThemeType: "news",
		Keywords:  []string{"astana"},
	})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if theme.ID != "t9" {
		t.Errorf("id = %q", theme.ID)
	}
	if received.Name != "Astana" || len(received.Keywords) != 1 {
		t.Errorf("received = %+v", received)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"jwt-abc"}`))
	}))

	token, err := client.Login(context.Background(), "ops@scano.example", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q", token)
	}
}

func TestLoginEmptyTokenIsError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	if _, err := client.Login(context.Background(), "a@b.c", "secret123"); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestExportThemeReturnsBlob(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "pdf" {
			t.Errorf("format = %q", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))

	data, contentType, err := client.ExportTheme(context.Background(), "tok", "t1", "pdf")
	if err != nil {
		t.Fatalf("ExportTheme: %v", err)
	}
	if contentType != "application/pdf" {
		t.Errorf("content type = %q", contentType)
	}
	if string(data) != "%PDF-1.7 fake" {
		t.Errorf("data = %q", data)
	}
}

func TestExportThemeRejectsUnknownFormat(t *testing.T) {
	client, _ := testClient(t, http.NotFoundHandler())
	if _, _, err := client.ExportTheme(context.Background(), "tok", "t1", "csv"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestContextCancellationAbortsFetch(t *testing.T) {
	started := make(chan struct{})
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := client.ListThemes(ctx, "tok")
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected error after cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not return after cancellation")
	}
}

func TestBodyExcerptIsBounded(t *testing.T) {
	long := make([]byte, bodyExcerptLimit*4)
	for i := range long {
		long[i] = 'x'
	}
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(long)
	}))

	_, err := client.ListThemes(context.Background(), "tok")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if len(fe.Body) > bodyExcerptLimit {
		t.Errorf("excerpt length = %d", len(fe.Body))
	}
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/models"
	"github.com/scano-io/scanogate/internal/refcache"
	"github.com/scano-io/scanogate/internal/scano"
	"github.com/scano-io/scanogate/internal/session"
)

// stubUpstream overrides the slice of the upstream surface each test
// exercises; unimplemented calls panic on the embedded nil interface.
type stubUpstream struct {
	scano.API

	login         func(ctx context.Context, email, password string) (string, error)
	currentUser   func(ctx context.Context, token string) (*models.UserProfile, error)
	listThemes    func(ctx context.Context, token string) ([]models.Theme, error)
	listMaterials func(ctx context.Context, token, themeID string) ([]models.Material, error)
	deleteMat     func(ctx context.Context, token, id string) error
	createTheme   func(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error)
	authorsAge    func(ctx context.Context, token, themeID string) ([]models.NamedCount, error)
}

func (s *stubUpstream) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func (s *stubUpstream) CurrentUser(ctx context.Context, token string) (*models.UserProfile, error) {
	if s.currentUser != nil {
		return s.currentUser(ctx, token)
	}
	return &models.UserProfile{ID: "u1", Name: "Aliya", Role: models.RoleAdmin}, nil
}

func (s *stubUpstream) ListThemes(ctx context.Context, token string) ([]models.Theme, error) {
	return s.listThemes(ctx, token)
}

func (s *stubUpstream) ListMaterials(ctx context.Context, token, themeID string) ([]models.Material, error) {
	return s.listMaterials(ctx, token, themeID)
}

func (s *stubUpstream) DeleteMaterial(ctx context.Context, token, id string) error {
	return s.deleteMat(ctx, token, id)
}

func (s *stubUpstream) CreateTheme(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error) {
	return s.createTheme(ctx, token, req)
}

func (s *stubUpstream) AuthorsAge(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return s.authorsAge(ctx, token, themeID)
}

type harness struct {
	router  http.Handler
	cookies *session.Cookies
	refs    *refcache.Store
}

func newHarness(t *testing.T, upstream scano.API) *harness {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cookies := session.NewCookies(&config.SessionConfig{TokenCookie: "scano_acess_token"})
	provider := session.NewProvider(session.NewStore(db, time.Minute), upstream)
	refs := refcache.NewStore(db, time.Minute)
	handler := NewHandler(upstream, provider, cookies, refs, config.APIConfig{DefaultPageSize: 10, MaxBulkDelete: 100})
	chimw := NewChiMiddleware(&config.SecurityConfig{
		RateLimitReqs:   10000,
		RateLimitWindow: time.Minute,
		RateLimitAuth:   10000,
	})
	return &harness{router: NewRouter(handler, chimw), cookies: cookies, refs: refs}
}

func (h *harness) do(t *testing.T, method, path, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: h.cookies.Name, Value: token})
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return envelope
}

func TestLoginSetsCookie(t *testing.T) {
	upstream := &stubUpstream{
		login: func(ctx context.Context, email, password string) (string, error) {
			if email != "ops@scano.example" {
				t.Errorf("email = %q", email)
			}
			return "jwt-token", nil
		},
	}
	h := newHarness(t, upstream)

	rec := h.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ops@scano.example","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "scano_acess_token" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "jwt-token" {
		t.Fatalf("cookie = %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Status != "success" {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestLoginRejectsBadPayload(t *testing.T) {
	h := newHarness(t, &stubUpstream{})

	rec := h.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"not-an-email","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestProtectedRouteWithoutCookie(t *testing.T) {
	h := newHarness(t, &stubUpstream{
		listThemes: func(ctx context.Context, token string) ([]models.Theme, error) {
			t.Error("upstream must not be called without a session")
			return nil, nil
		},
	})

	rec := h.do(t, http.MethodGet, "/api/v1/themes", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestThemesListWarmsRefCache(t *testing.T) {
	themes := []models.Theme{{ID: "t1", Name: "Almaty"}, {ID: "t2", Name: "Astana"}}
	calls := 0
	h := newHarness(t, &stubUpstream{
		listThemes: func(ctx context.Context, token string) ([]models.Theme, error) {
			calls++
			return themes, nil
		},
	})

	rec := h.do(t, http.MethodGet, "/api/v1/themes", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	// The refs endpoint now serves from cache without another upstream call.
	rec = h.do(t, http.MethodGet, "/api/v1/themes/refs", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refs status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Metadata.Cached {
		t.Error("expected cached metadata flag")
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d", calls)
	}

	refs, ok := envelope.Data.([]interface{})
	if !ok || len(refs) != 2 {
		t.Fatalf("data = %+v", envelope.Data)
	}
	first, _ := refs[0].(map[string]interface{})
	if first["_id"] != "t1" || first["name"] != "Almaty" {
		t.Errorf("first ref = %+v", first)
	}
}

func TestThemeCreateInvalidatesRefCache(t *testing.T) {
	themes := []models.Theme{{ID: "t1", Name: "Almaty"}}
	listCalls := 0
	h := newHarness(t, &stubUpstream{
		listThemes: func(ctx context.Context, token string) ([]models.Theme, error) {
			listCalls++
			return themes, nil
		},
		createTheme: func(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error) {
			return &models.Theme{ID: "t9", Name: req.Name}, nil
		},
	})

	h.do(t, http.MethodGet, "/api/v1/themes", "tok-1", "") // warms cache

	rec := h.do(t, http.MethodPost, "/api/v1/themes", "tok-1",
		`{"name":"Shymkent","theme_type":"news","keywords":["shymkent"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	// Cache was invalidated: refs refetches upstream.
	h.do(t, http.MethodGet, "/api/v1/themes/refs", "tok-1", "")
	if listCalls != 2 {
		t.Errorf("upstream list calls = %d", listCalls)
	}
}

func manyMaterials(n int) []models.Material {
	materials := make([]models.Material, n)
	for i := range materials {
		materials[i] = models.Material{ID: string(rune('a' + i)), Title: "item"}
	}
	return materials
}

func TestMaterialsPagination(t *testing.T) {
	h := newHarness(t, &stubUpstream{
		listMaterials: func(ctx context.Context, token, themeID string) ([]models.Material, error) {
			if themeID != "t1" {
				t.Errorf("theme id = %q", themeID)
			}
			return manyMaterials(12), nil
		},
	})

	rec := h.do(t, http.MethodGet, "/api/v1/themes/t1/materials?page=3&size=5", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := json.Marshal(envelope.Data)
	var page models.MaterialPage
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Page != 3 || page.PageCount != 3 || page.TotalItems != 12 {
		t.Errorf("page = %+v", page)
	}
	if len(page.Items) != 2 {
		t.Errorf("last page items = %d", len(page.Items))
	}

	// Out-of-range pages clamp instead of erroring.
	rec = h.do(t, http.MethodGet, "/api/v1/themes/t1/materials?page=99&size=5", "tok-1", "")
	envelope = decodeEnvelope(t, rec)
	data, _ = json.Marshal(envelope.Data)
	_ = json.Unmarshal(data, &page)
	if page.Page != 3 {
		t.Errorf("clamped page = %d", page.Page)
	}
}

func TestBulkDeleteReportsPartialFailure(t *testing.T) {
	h := newHarness(t, &stubUpstream{
		deleteMat: func(ctx context.Context, token, id string) error {
			if id == "m2" {
				return &scano.FetchError{Entity: "materials", Operation: "delete", StatusCode: 404, Err: scano.ErrNotFound}
			}
			return nil
		},
	})

	rec := h.do(t, http.MethodPost, "/api/v1/themes/t1/materials/bulk-delete", "tok-1",
		`{"ids":["m1","m2","m3"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := json.Marshal(envelope.Data)
	var result models.BulkResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.Deleted) != 2 || len(result.Failed) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if result.Failed[0].ID != "m2" || result.Failed[0].Reason != "not found" {
		t.Errorf("failure = %+v", result.Failed[0])
	}
}

func TestUpstreamRejectionDestroysSession(t *testing.T) {
	h := newHarness(t, &stubUpstream{
		listThemes: func(ctx context.Context, token string) ([]models.Theme, error) {
			return nil, &scano.FetchError{Entity: "themes", Operation: "list", StatusCode: 401, Err: scano.ErrUnauthorized}
		},
	})

	rec := h.do(t, http.MethodGet, "/api/v1/themes", "dead-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == h.cookies.Name && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected token cookie cleared on upstream rejection")
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Code != "AUTHENTICATION_ERROR" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestAnalyticsDonutShape(t *testing.T) {
	h := newHarness(t, &stubUpstream{
		authorsAge: func(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
			return []models.NamedCount{{Name: "18-24", Value: 40}, {Name: "25-34", Value: 60}}, nil
		},
	})

	rec := h.do(t, http.MethodGet, "/api/v1/themes/t1/analytics/authors-age", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"labels":["18-24","25-34"]`) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"series":[40,60]`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestNavEndpoint(t *testing.T) {
	h := newHarness(t, &stubUpstream{})

	rec := h.do(t, http.MethodGet, "/api/v1/nav?path=/kk/64f0c2/analytic", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"active":"analytic"`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = h.do(t, http.MethodGet, "/api/v1/nav", "tok-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing path status = %d", rec.Code)
	}
}

func TestHealthzIsOpen(t *testing.T) {
	h := newHarness(t, &stubUpstream{})

	rec := h.do(t, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h := newHarness(t, &stubUpstream{})

	rec := h.do(t, http.MethodPost, "/api/v1/auth/logout", "tok-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == h.cookies.Name && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected cookie cleared on logout")
	}
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/logging"
)

type contextKey string

const tokenContextKey contextKey = "session_token"

// TokenFromContext returns the bearer token the gating middleware attached,
// or "" outside a gated request.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// Cookies manages the token cookie. The name keeps the upstream's historical
// spelling (scano_acess_token) so existing web clients keep working.
type Cookies struct {
	Name   string
	Secure bool
}

// NewCookies builds cookie settings from config.
func NewCookies(cfg *config.SessionConfig) *Cookies {
	return &Cookies{Name: cfg.TokenCookie, Secure: cfg.CookieHTTPS}
}

// Set writes the token cookie. maxAge of zero makes a session cookie.
func (c *Cookies) Set(w http.ResponseWriter, token string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
	}
	http.SetCookie(w, cookie)
}

// Clear expires the token cookie.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token reads the token cookie from a request, or "".
func (c *Cookies) Token(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Gate returns middleware that requires a live session. Requests without a
// token get a redirect to the login page (HTML navigation) or a 401 envelope
// (API calls). Tokens that are already expired per their JWT exp claim are
// treated the same, with the cookie cleared, so the browser does not keep
// replaying a dead token.
func Gate(cookies *Cookies, provider *Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookies.Token(r)
			if token == "" {
				denySession(w, r, cookies, false)
				return
			}
			if TokenExpired(token) {
				logging.Ctx(r.Context()).Debug().Msg("Rejecting request with expired token")
				provider.Destroy(token)
				denySession(w, r, cookies, true)
				return
			}
			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// denySession ends a request that has no usable session.
func denySession(w http.ResponseWriter, r *http.Request, cookies *Cookies, clearCookie bool) {
	if clearCookie {
		cookies.Clear(w)
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "error",
		"error": map[string]string{
			"code":    "SESSION_REQUIRED",
			"message": "Authentication required",
		},
	})
}

// wantsHTML reports whether the request is a browser navigation rather than
// an API call.
func wantsHTML(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || accept == ""
}

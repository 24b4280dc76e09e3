// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package scano

import (
	"context"
	"net/http"
	"net/url"

	"github.com/scano-io/scanogate/internal/models"
)

// UsersAPI covers account management and the current-user profile.
type UsersAPI interface {
	CurrentUser(ctx context.Context, token string) (*models.UserProfile, error)
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	GetUser(ctx context.Context, token, id string) (*models.User, error)
	CreateUser(ctx context.Context, token string, req *models.UserCreateRequest) (*models.User, error)
	UpdateUser(ctx context.Context, token, id string, req *models.UserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, token, id string) error
	SuspendUser(ctx context.Context, token, id string, suspend bool) (*models.User, error)
}

// CurrentUser fetches the profile bound to the bearer token. Called through
// the session provider, which caches and deduplicates it.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, "users", "me", http.MethodGet, "/users/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListUsers fetches all accounts in the token's organization.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, "users", "list", http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account by id. Backs the edit-user form.
func (c *Client) GetUser(ctx context.Context, token, id string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "users", "detail", http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates an account.
func (c *Client) CreateUser(ctx context.Context, token string, req *models.UserCreateRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "users", "create", http.MethodPost, "/users", token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches an account; nil request fields are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, token, id string, req *models.UserUpdateRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "users", "update", http.MethodPatch, "/users/"+url.PathEscape(id), token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes an account by id.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, "users", "delete", http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil)
}

// SuspendUser toggles an account's active flag.
func (c *Client) SuspendUser(ctx context.Context, token, id string, suspend bool) (*models.User, error) {
	payload := map[string]bool{"suspend": suspend}
	var user models.User
	path := "/users/" + url.PathEscape(id) + "/suspend"
	if err := c.do(ctx, "users", "suspend", http.MethodPost, path, token, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

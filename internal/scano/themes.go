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

// ThemesAPI covers theme CRUD against the upstream.
type ThemesAPI interface {
	ListThemes(ctx context.Context, token string) ([]models.Theme, error)
	GetTheme(ctx context.Context, token, id string) (*models.Theme, error)
	CreateTheme(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error)
	UpdateTheme(ctx context.Context, token, id string, req *models.ThemeUpdateRequest) (*models.Theme, error)
	DeleteTheme(ctx context.Context, token, id string) error
}

// ListThemes fetches all themes visible to the token's organization, with
// their rolling counters.
func (c *Client) ListThemes(ctx context.Context, token string) ([]models.Theme, error) {
	var themes []models.Theme
	if err := c.do(ctx, "themes", "list", http.MethodGet, "/themes", token, nil, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// GetTheme fetches one theme by id.
func (c *Client) GetTheme(ctx context.Context, token, id string) (*models.Theme, error) {
	var theme models.Theme
	if err := c.do(ctx, "themes", "detail", http.MethodGet, "/themes/"+url.PathEscape(id), token, nil, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// CreateTheme creates a theme and returns the stored record.
func (c *Client) CreateTheme(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error) {
	var theme models.Theme
	if err := c.do(ctx, "themes", "create", http.MethodPost, "/themes", token, req, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// UpdateTheme patches a theme; nil request fields are left unchanged.
func (c *Client) UpdateTheme(ctx context.Context, token, id string, req *models.ThemeUpdateRequest) (*models.Theme, error) {
	var theme models.Theme
	if err := c.do(ctx, "themes", "update", http.MethodPatch, "/themes/"+url.PathEscape(id), token, req, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// DeleteTheme deletes a theme by id.
func (c *Client) DeleteTheme(ctx context.Context, token, id string) error {
	return c.do(ctx, "themes", "delete", http.MethodDelete, "/themes/"+url.PathEscape(id), token, nil, nil)
}

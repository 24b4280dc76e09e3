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

// MaterialsAPI covers the matched-content list under a theme. The upstream
// returns the full list in one shot; pagination is cut gateway-side.
type MaterialsAPI interface {
	ListMaterials(ctx context.Context, token, themeID string) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, token, id string, req *models.MaterialUpdateRequest) (*models.Material, error)
	DeleteMaterial(ctx context.Context, token, id string) error
}

// ListMaterials fetches all materials matched under a theme.
func (c *Client) ListMaterials(ctx context.Context, token, themeID string) ([]models.Material, error) {
	var materials []models.Material
	path := "/themes/" + url.PathEscape(themeID) + "/materials"
	if err := c.do(ctx, "materials", "list", http.MethodGet, path, token, nil, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// UpdateMaterial saves a locally edited tone, tag set or favorite flag.
func (c *Client) UpdateMaterial(ctx context.Context, token, id string, req *models.MaterialUpdateRequest) (*models.Material, error) {
	var material models.Material
	if err := c.do(ctx, "materials", "update", http.MethodPatch, "/materials/"+url.PathEscape(id), token, req, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

// DeleteMaterial deletes one material by id. Bulk deletes iterate this call
// and aggregate outcomes; see selection.BulkDelete.
func (c *Client) DeleteMaterial(ctx context.Context, token, id string) error {
	return c.do(ctx, "materials", "delete", http.MethodDelete, "/materials/"+url.PathEscape(id), token, nil, nil)
}

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

// TagsAPI covers tags and the auto-tagging rules that apply them.
type TagsAPI interface {
	ListTags(ctx context.Context, token string) ([]models.Tag, error)
	CreateTag(ctx context.Context, token string, req *models.TagCreateRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, token, id string) error

	ListRules(ctx context.Context, token string) ([]models.Rule, error)
	CreateRule(ctx context.Context, token string, req *models.RuleRequest) (*models.Rule, error)
	UpdateRule(ctx context.Context, token, id string, req *models.RuleRequest) (*models.Rule, error)
	DeleteRule(ctx context.Context, token, id string) error
}

// ListTags fetches all tags in the token's organization.
func (c *Client) ListTags(ctx context.Context, token string) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, "tags", "list", http.MethodGet, "/tags", token, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, token string, req *models.TagCreateRequest) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, "tags", "create", http.MethodPost, "/tags", token, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag by id.
func (c *Client) DeleteTag(ctx context.Context, token, id string) error {
	return c.do(ctx, "tags", "delete", http.MethodDelete, "/tags/"+url.PathEscape(id), token, nil, nil)
}

// ListRules fetches all auto-tagging rules.
func (c *Client) ListRules(ctx context.Context, token string) ([]models.Rule, error) {
	var rules []models.Rule
	if err := c.do(ctx, "rules", "list", http.MethodGet, "/rules", token, nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateRule creates a rule.
func (c *Client) CreateRule(ctx context.Context, token string, req *models.RuleRequest) (*models.Rule, error) {
	var rule models.Rule
	if err := c.do(ctx, "rules", "create", http.MethodPost, "/rules", token, req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateRule replaces a rule's criteria.
func (c *Client) UpdateRule(ctx context.Context, token, id string, req *models.RuleRequest) (*models.Rule, error) {
	var rule models.Rule
	if err := c.do(ctx, "rules", "update", http.MethodPatch, "/rules/"+url.PathEscape(id), token, req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteRule deletes a rule by id.
func (c *Client) DeleteRule(ctx context.Context, token, id string) error {
	return c.do(ctx, "rules", "delete", http.MethodDelete, "/rules/"+url.PathEscape(id), token, nil, nil)
}

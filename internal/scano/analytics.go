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

// AnalyticsAPI covers the per-theme aggregates behind the dashboard charts.
// All aggregation happens upstream; the gateway adapts the results into
// chart configs.
type AnalyticsAPI interface {
	AuthorsAge(ctx context.Context, token, themeID string) ([]models.NamedCount, error)
	AuthorsGender(ctx context.Context, token, themeID string) ([]models.NamedCount, error)
	Countries(ctx context.Context, token, themeID string) ([]models.NamedCount, error)
	SourceTypes(ctx context.Context, token, themeID string) ([]models.NamedCount, error)
	SentimentSeries(ctx context.Context, token, themeID string) ([]models.SentimentPoint, error)
}

func (c *Client) namedCounts(ctx context.Context, operation, token, themeID, suffix string) ([]models.NamedCount, error) {
	var counts []models.NamedCount
	path := "/themes/" + url.PathEscape(themeID) + "/analytics/" + suffix
	if err := c.do(ctx, "analytics", operation, http.MethodGet, path, token, nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// AuthorsAge fetches the author age-bracket aggregate.
func (c *Client) AuthorsAge(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return c.namedCounts(ctx, "authors-age", token, themeID, "authors-age")
}

// AuthorsGender fetches the author gender aggregate.
func (c *Client) AuthorsGender(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return c.namedCounts(ctx, "authors-gender", token, themeID, "authors-gender")
}

// Countries fetches the per-country mention aggregate.
func (c *Client) Countries(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return c.namedCounts(ctx, "countries", token, themeID, "countries")
}

// SourceTypes fetches the source-type breakdown aggregate.
func (c *Client) SourceTypes(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return c.namedCounts(ctx, "source-types", token, themeID, "source-types")
}

// SentimentSeries fetches the sentiment-over-time buckets.
func (c *Client) SentimentSeries(ctx context.Context, token, themeID string) ([]models.SentimentPoint, error) {
	var points []models.SentimentPoint
	path := "/themes/" + url.PathEscape(themeID) + "/analytics/sentiment"
	if err := c.do(ctx, "analytics", "sentiment", http.MethodGet, path, token, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

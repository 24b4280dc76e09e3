// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

import "time"

// Sentiment labels assigned upstream.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Material is a single matched content item under a theme. Fetched in bulk
// per theme; tone/favorite changes stay local until explicitly saved.
type Material struct {
	ID          string         `json:"_id"`
	ThemeID     string         `json:"theme_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Source      MaterialSource `json:"source"`
	Sentiment   string         `json:"sentiment"`
	Tags        []string       `json:"tags"`
	ImgURL      string         `json:"img_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Local-only view state, never sent upstream unless saved explicitly.
	Favorite bool `json:"favorite,omitempty"`
}

// MaterialSource describes where a material was matched.
type MaterialSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"` // news, social, telegram, ...
}

// MaterialUpdateRequest saves a locally edited tone or tag set upstream.
type MaterialUpdateRequest struct {
	Sentiment *string   `json:"sentiment,omitempty" validate:"omitempty,oneof=positive negative neutral"`
	Tags      *[]string `json:"tags,omitempty"`
	Favorite  *bool     `json:"favorite,omitempty"`
}

// MaterialPage is a client-ready slice of the materials list plus the
// pagination frame it was cut with.
type MaterialPage struct {
	Items      []Material `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	PageCount  int        `json:"page_count"`
	TotalItems int        `json:"total_items"`
}

// BulkFailure reports one failed deletion inside a bulk action.
type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult aggregates per-id outcomes of a bulk delete. Partial failures
// are reported instead of silently dropped.
type BulkResult struct {
	Deleted []string      `json:"deleted"`
	Failed  []BulkFailure `json:"failed,omitempty"`
}

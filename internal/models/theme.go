// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

import "time"

// Theme is a saved monitoring query. Matching and counting happen upstream;
// the gateway only lists, creates, edits and deletes themes and mirrors the
// list into the reference cache.
type Theme struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	ThemeType      string   `json:"theme_type"`
	Keywords       []string `json:"keywords"`
	MinusKeywords  []string `json:"minus_keywords"`
	SourceTypes    []string `json:"source_types"`
	MaterialTypes  []string `json:"material_types"`
	SearchDomains  []string `json:"search_domains"`
	Language       string   `json:"language"`
	ExcludeSources []string `json:"exclude_sources"`

	Counters  ThemeCounters `json:"counters"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ThemeCounters holds the rolling aggregate counters the dashboard table
// renders per theme. Computed upstream.
type ThemeCounters struct {
	Today SentimentCounts `json:"today"`
	Week  SentimentCounts `json:"week"`
	Total SentimentCounts `json:"total"`
}

// SentimentCounts is a positive/negative/neutral/total quad.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

// ThemeRef is the slim projection stored in the reference cache and consumed
// by theme pickers (create-rule, create-user, add-message-theme, archive
// forms). Serialized shape matches the full list entry's identifying fields.
type ThemeRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ThemeCreateRequest is the payload for creating a theme.
type ThemeCreateRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	ThemeType      string   `json:"theme_type" validate:"required,oneof=all news social"`
	Keywords       []string `json:"keywords" validate:"required,min=1,dive,min=1"`
	MinusKeywords  []string `json:"minus_keywords" validate:"omitempty,dive,min=1"`
	SourceTypes    []string `json:"source_types"`
	MaterialTypes  []string `json:"material_types"`
	SearchDomains  []string `json:"search_domains"`
	Language       string   `json:"language" validate:"omitempty,max=8"`
	ExcludeSources []string `json:"exclude_sources"`
}

// ThemeUpdateRequest is the patch payload for editing a theme. Nil fields
// are left unchanged upstream.
type ThemeUpdateRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Keywords       *[]string `json:"keywords,omitempty" validate:"omitempty,min=1"`
	MinusKeywords  *[]string `json:"minus_keywords,omitempty"`
	SourceTypes    *[]string `json:"source_types,omitempty"`
	MaterialTypes  *[]string `json:"material_types,omitempty"`
	SearchDomains  *[]string `json:"search_domains,omitempty"`
	Language       *string   `json:"language,omitempty" validate:"omitempty,max=8"`
	ExcludeSources *[]string `json:"exclude_sources,omitempty"`
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

// Tag is an operator-defined label attached to materials.
type Tag struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Rule auto-applies a tag to materials matching keyword criteria. Matching
// runs upstream; the gateway only manages the rule records.
type Rule struct {
	ID       string   `json:"_id"`
	ThemeID  string   `json:"theme_id"`
	TagID    string   `json:"tag_id"`
	Keywords []string `json:"keywords"`
}

// TagCreateRequest creates a tag.
type TagCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=80"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// RuleRequest creates or updates a rule. The theme picker on this form is
// populated from the reference cache.
type RuleRequest struct {
	ThemeID  string   `json:"theme_id" validate:"required"`
	TagID    string   `json:"tag_id" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,min=1"`
}

// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

import "time"

// Roles recognized by the upstream API.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleGuest     = "guest"
)

// UserProfile is the "current user" payload cached by the session provider.
type UserProfile struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	AvatarID string `json:"avatar_id,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// User is an operator/admin account scoped to an organization, managed via
// the admin forms.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	AvatarID  string    `json:"avatar_id,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	ThemeIDs  []string  `json:"theme_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=120"`
	Email    string   `json:"email" validate:"required,email"`
	Role     string   `json:"role" validate:"required,oneof=admin moderator guest"`
	Password string   `json:"password" validate:"required,min=8"`
	Timezone string   `json:"timezone" validate:"omitempty,max=64"`
	ThemeIDs []string `json:"theme_ids"`
}

// UserUpdateRequest is the patch payload for editing a user. The edit form
// loads current values via GET /users/{id} (detail refetch replaced the old
// editUserData cookie channel).
type UserUpdateRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string   `json:"role,omitempty" validate:"omitempty,oneof=admin moderator guest"`
	Timezone *string   `json:"timezone,omitempty" validate:"omitempty,max=64"`
	ThemeIDs *[]string `json:"theme_ids,omitempty"`
}

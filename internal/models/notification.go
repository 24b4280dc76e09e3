// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package models

import "time"

// Export file formats accepted by subscription plans.
const (
	FileFormatDocx  = "docx"
	FileFormatPDF   = "pdf"
	FileFormatExcel = "excel"
)

// NotificationPlan binds a theme to delivery channels for immediate alerts.
type NotificationPlan struct {
	ID                 string    `json:"_id"`
	ThemeID            string    `json:"theme_id"`
	Emails             []string  `json:"emails"`
	TelegramChannelIDs []string  `json:"telegram_channel_ids"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

// Subscription binds a theme to a scheduled report export.
type Subscription struct {
	ID                 string    `json:"_id"`
	ThemeID            string    `json:"theme_id"`
	Emails             []string  `json:"emails"`
	TelegramChannelIDs []string  `json:"telegram_channel_ids"`
	Header             string    `json:"header"`
	Subheader          string    `json:"subheader"`
	FileFormats        []string  `json:"file_formats"`
	Schedule           string    `json:"schedule"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

// NotificationPlanRequest creates or replaces a notification plan.
type NotificationPlanRequest struct {
	ThemeID            string   `json:"theme_id" validate:"required"`
	Emails             []string `json:"emails" validate:"omitempty,dive,email"`
	TelegramChannelIDs []string `json:"telegram_channel_ids"`
	Active             bool     `json:"active"`
}

// SubscriptionRequest creates or replaces a subscription.
type SubscriptionRequest struct {
	ThemeID            string   `json:"theme_id" validate:"required"`
	Emails             []string `json:"emails" validate:"omitempty,dive,email"`
	TelegramChannelIDs []string `json:"telegram_channel_ids"`
	Header             string   `json:"header" validate:"max=200"`
	Subheader          string   `json:"subheader" validate:"max=200"`
	FileFormats        []string `json:"file_formats" validate:"required,min=1,dive,oneof=docx pdf excel"`
	Schedule           string   `json:"schedule" validate:"required"`
	Active             bool     `json:"active"`
}

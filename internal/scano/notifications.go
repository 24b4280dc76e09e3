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

// NotificationsAPI covers immediate-alert plans and scheduled report
// subscriptions.
type NotificationsAPI interface {
	ListNotificationPlans(ctx context.Context, token string) ([]models.NotificationPlan, error)
	CreateNotificationPlan(ctx context.Context, token string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error)
	UpdateNotificationPlan(ctx context.Context, token, id string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error)
	DeleteNotificationPlan(ctx context.Context, token, id string) error

	ListSubscriptions(ctx context.Context, token string) ([]models.Subscription, error)
	CreateSubscription(ctx context.Context, token string, req *models.SubscriptionRequest) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, token, id string, req *models.SubscriptionRequest) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, token, id string) error
}

// ListNotificationPlans fetches all alert plans.
func (c *Client) ListNotificationPlans(ctx context.Context, token string) ([]models.NotificationPlan, error) {
	var plans []models.NotificationPlan
	if err := c.do(ctx, "notifications", "list", http.MethodGet, "/notification-plans", token, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreateNotificationPlan creates an alert plan.
func (c *Client) CreateNotificationPlan(ctx context.Context, token string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error) {
	var plan models.NotificationPlan
	if err := c.do(ctx, "notifications", "create", http.MethodPost, "/notification-plans", token, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateNotificationPlan replaces an alert plan.
func (c *Client) UpdateNotificationPlan(ctx context.Context, token, id string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error) {
	var plan models.NotificationPlan
	if err := c.do(ctx, "notifications", "update", http.MethodPatch, "/notification-plans/"+url.PathEscape(id), token, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteNotificationPlan deletes an alert plan by id.
func (c *Client) DeleteNotificationPlan(ctx context.Context, token, id string) error {
	return c.do(ctx, "notifications", "delete", http.MethodDelete, "/notification-plans/"+url.PathEscape(id), token, nil, nil)
}

// ListSubscriptions fetches all scheduled report subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, token string) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := c.do(ctx, "subscriptions", "list", http.MethodGet, "/subscriptions", token, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CreateSubscription creates a subscription.
func (c *Client) CreateSubscription(ctx context.Context, token string, req *models.SubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.do(ctx, "subscriptions", "create", http.MethodPost, "/subscriptions", token, req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscription replaces a subscription.
func (c *Client) UpdateSubscription(ctx context.Context, token, id string, req *models.SubscriptionRequest) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.do(ctx, "subscriptions", "update", http.MethodPatch, "/subscriptions/"+url.PathEscape(id), token, req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubscription deletes a subscription by id.
func (c *Client) DeleteSubscription(ctx context.Context, token, id string) error {
	return c.do(ctx, "subscriptions", "delete", http.MethodDelete, "/subscriptions/"+url.PathEscape(id), token, nil, nil)
}

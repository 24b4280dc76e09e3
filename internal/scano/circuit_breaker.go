// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package scano

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/scano-io/scanogate/internal/config"
	"github.com/scano-io/scanogate/internal/logging"
	"github.com/scano-io/scanogate/internal/metrics"
	"github.com/scano-io/scanogate/internal/models"
)

// CircuitBreakerClient wraps Client with a circuit breaker so a failing
// upstream sheds load fast instead of queueing every dashboard request
// behind a timeout.
//
// DETERMINISM NOTE: the breaker uses real time (via sony/gobreaker) for its
// interval and timeout calculations. The timing only governs recovery; tests
// should mock the wrapped client rather than the breaker.
type CircuitBreakerClient struct {
	client API
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

var _ API = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient creates an upstream client guarded by a circuit
// breaker:
// - max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - configurable recovery timeout (default 2 minutes)
// - opens at a configurable failure ratio (default 60%) over a minimum
//   request count (default 10)
func NewCircuitBreakerClient(cfg *config.ScanoConfig) *CircuitBreakerClient {
	return wrapWithBreaker(NewClient(cfg), cfg)
}

func wrapWithBreaker(client API, cfg *config.ScanoConfig) *CircuitBreakerClient {
	cbName := "scano-api"

	minRequests := cfg.BreakerMinRequests
	if minRequests == 0 {
		minRequests = 10
	}
	failureRatio := cfg.BreakerFailureRatio
	if failureRatio <= 0 {
		failureRatio = 0.6
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cbName}
}

// execute wraps one upstream call with circuit breaker protection. An open
// circuit or half-open overflow comes back as ErrUnavailable so handlers map
// it to 503 without a special case.
func (cbc *CircuitBreakerClient) execute(entity, operation string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.UpstreamRequestsTotal.WithLabelValues(entity, operation, "rejected").Inc()
			logging.Warn().Str("entity", entity).Str("operation", operation).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &FetchError{
				Entity:    entity,
				Operation: operation,
				Err:       fmt.Errorf("%w: %v", ErrUnavailable, err),
			}
		}
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// castResult safely type-casts a circuit breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// castSlice is castResult for slice-returning fetchers.
func castSlice[T any](result interface{}, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.([]T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Login exchanges credentials with circuit breaker protection.
func (cbc *CircuitBreakerClient) Login(ctx context.Context, email, password string) (string, error) {
	result, err := cbc.execute("auth", "login", func() (interface{}, error) {
		return cbc.client.Login(ctx, email, password)
	})
	if err != nil {
		return "", err
	}
	token, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return token, nil
}

// Themes

func (cbc *CircuitBreakerClient) ListThemes(ctx context.Context, token string) ([]models.Theme, error) {
	return castSlice[models.Theme](cbc.execute("themes", "list", func() (interface{}, error) {
		return cbc.client.ListThemes(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) GetTheme(ctx context.Context, token, id string) (*models.Theme, error) {
	return castResult[models.Theme](cbc.execute("themes", "detail", func() (interface{}, error) {
		return cbc.client.GetTheme(ctx, token, id)
	}))
}

func (cbc *CircuitBreakerClient) CreateTheme(ctx context.Context, token string, req *models.ThemeCreateRequest) (*models.Theme, error) {
	return castResult[models.Theme](cbc.execute("themes", "create", func() (interface{}, error) {
		return cbc.client.CreateTheme(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) UpdateTheme(ctx context.Context, token, id string, req *models.ThemeUpdateRequest) (*models.Theme, error) {
	return castResult[models.Theme](cbc.execute("themes", "update", func() (interface{}, error) {
		return cbc.client.UpdateTheme(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteTheme(ctx context.Context, token, id string) error {
	_, err := cbc.execute("themes", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteTheme(ctx, token, id)
	})
	return err
}

// Materials

func (cbc *CircuitBreakerClient) ListMaterials(ctx context.Context, token, themeID string) ([]models.Material, error) {
	return castSlice[models.Material](cbc.execute("materials", "list", func() (interface{}, error) {
		return cbc.client.ListMaterials(ctx, token, themeID)
	}))
}

func (cbc *CircuitBreakerClient) UpdateMaterial(ctx context.Context, token, id string, req *models.MaterialUpdateRequest) (*models.Material, error) {
	return castResult[models.Material](cbc.execute("materials", "update", func() (interface{}, error) {
		return cbc.client.UpdateMaterial(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteMaterial(ctx context.Context, token, id string) error {
	_, err := cbc.execute("materials", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteMaterial(ctx, token, id)
	})
	return err
}

// Users

func (cbc *CircuitBreakerClient) CurrentUser(ctx context.Context, token string) (*models.UserProfile, error) {
	return castResult[models.UserProfile](cbc.execute("users", "me", func() (interface{}, error) {
		return cbc.client.CurrentUser(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	return castSlice[models.User](cbc.execute("users", "list", func() (interface{}, error) {
		return cbc.client.ListUsers(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) GetUser(ctx context.Context, token, id string) (*models.User, error) {
	return castResult[models.User](cbc.execute("users", "detail", func() (interface{}, error) {
		return cbc.client.GetUser(ctx, token, id)
	}))
}

func (cbc *CircuitBreakerClient) CreateUser(ctx context.Context, token string, req *models.UserCreateRequest) (*models.User, error) {
	return castResult[models.User](cbc.execute("users", "create", func() (interface{}, error) {
		return cbc.client.CreateUser(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) UpdateUser(ctx context.Context, token, id string, req *models.UserUpdateRequest) (*models.User, error) {
	return castResult[models.User](cbc.execute("users", "update", func() (interface{}, error) {
		return cbc.client.UpdateUser(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteUser(ctx context.Context, token, id string) error {
	_, err := cbc.execute("users", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteUser(ctx, token, id)
	})
	return err
}

func (cbc *CircuitBreakerClient) SuspendUser(ctx context.Context, token, id string, suspend bool) (*models.User, error) {
	return castResult[models.User](cbc.execute("users", "suspend", func() (interface{}, error) {
		return cbc.client.SuspendUser(ctx, token, id, suspend)
	}))
}

// Tags and rules

func (cbc *CircuitBreakerClient) ListTags(ctx context.Context, token string) ([]models.Tag, error) {
	return castSlice[models.Tag](cbc.execute("tags", "list", func() (interface{}, error) {
		return cbc.client.ListTags(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) CreateTag(ctx context.Context, token string, req *models.TagCreateRequest) (*models.Tag, error) {
	return castResult[models.Tag](cbc.execute("tags", "create", func() (interface{}, error) {
		return cbc.client.CreateTag(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteTag(ctx context.Context, token, id string) error {
	_, err := cbc.execute("tags", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteTag(ctx, token, id)
	})
	return err
}

func (cbc *CircuitBreakerClient) ListRules(ctx context.Context, token string) ([]models.Rule, error) {
	return castSlice[models.Rule](cbc.execute("rules", "list", func() (interface{}, error) {
		return cbc.client.ListRules(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) CreateRule(ctx context.Context, token string, req *models.RuleRequest) (*models.Rule, error) {
	return castResult[models.Rule](cbc.execute("rules", "create", func() (interface{}, error) {
		return cbc.client.CreateRule(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) UpdateRule(ctx context.Context, token, id string, req *models.RuleRequest) (*models.Rule, error) {
	return castResult[models.Rule](cbc.execute("rules", "update", func() (interface{}, error) {
		return cbc.client.UpdateRule(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteRule(ctx context.Context, token, id string) error {
	_, err := cbc.execute("rules", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteRule(ctx, token, id)
	})
	return err
}

// Notification plans and subscriptions

func (cbc *CircuitBreakerClient) ListNotificationPlans(ctx context.Context, token string) ([]models.NotificationPlan, error) {
	return castSlice[models.NotificationPlan](cbc.execute("notifications", "list", func() (interface{}, error) {
		return cbc.client.ListNotificationPlans(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) CreateNotificationPlan(ctx context.Context, token string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error) {
	return castResult[models.NotificationPlan](cbc.execute("notifications", "create", func() (interface{}, error) {
		return cbc.client.CreateNotificationPlan(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) UpdateNotificationPlan(ctx context.Context, token, id string, req *models.NotificationPlanRequest) (*models.NotificationPlan, error) {
	return castResult[models.NotificationPlan](cbc.execute("notifications", "update", func() (interface{}, error) {
		return cbc.client.UpdateNotificationPlan(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteNotificationPlan(ctx context.Context, token, id string) error {
	_, err := cbc.execute("notifications", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteNotificationPlan(ctx, token, id)
	})
	return err
}

func (cbc *CircuitBreakerClient) ListSubscriptions(ctx context.Context, token string) ([]models.Subscription, error) {
	return castSlice[models.Subscription](cbc.execute("subscriptions", "list", func() (interface{}, error) {
		return cbc.client.ListSubscriptions(ctx, token)
	}))
}

func (cbc *CircuitBreakerClient) CreateSubscription(ctx context.Context, token string, req *models.SubscriptionRequest) (*models.Subscription, error) {
	return castResult[models.Subscription](cbc.execute("subscriptions", "create", func() (interface{}, error) {
		return cbc.client.CreateSubscription(ctx, token, req)
	}))
}

func (cbc *CircuitBreakerClient) UpdateSubscription(ctx context.Context, token, id string, req *models.SubscriptionRequest) (*models.Subscription, error) {
	return castResult[models.Subscription](cbc.execute("subscriptions", "update", func() (interface{}, error) {
		return cbc.client.UpdateSubscription(ctx, token, id, req)
	}))
}

func (cbc *CircuitBreakerClient) DeleteSubscription(ctx context.Context, token, id string) error {
	_, err := cbc.execute("subscriptions", "delete", func() (interface{}, error) {
		return nil, cbc.client.DeleteSubscription(ctx, token, id)
	})
	return err
}

// Analytics

func (cbc *CircuitBreakerClient) AuthorsAge(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return castSlice[models.NamedCount](cbc.execute("analytics", "authors-age", func() (interface{}, error) {
		return cbc.client.AuthorsAge(ctx, token, themeID)
	}))
}

func (cbc *CircuitBreakerClient) AuthorsGender(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return castSlice[models.NamedCount](cbc.execute("analytics", "authors-gender", func() (interface{}, error) {
		return cbc.client.AuthorsGender(ctx, token, themeID)
	}))
}

func (cbc *CircuitBreakerClient) Countries(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return castSlice[models.NamedCount](cbc.execute("analytics", "countries", func() (interface{}, error) {
		return cbc.client.Countries(ctx, token, themeID)
	}))
}

func (cbc *CircuitBreakerClient) SourceTypes(ctx context.Context, token, themeID string) ([]models.NamedCount, error) {
	return castSlice[models.NamedCount](cbc.execute("analytics", "source-types", func() (interface{}, error) {
		return cbc.client.SourceTypes(ctx, token, themeID)
	}))
}

func (cbc *CircuitBreakerClient) SentimentSeries(ctx context.Context, token, themeID string) ([]models.SentimentPoint, error) {
	return castSlice[models.SentimentPoint](cbc.execute("analytics", "sentiment", func() (interface{}, error) {
		return cbc.client.SentimentSeries(ctx, token, themeID)
	}))
}

// Files

type blobResult struct {
	data        []byte
	contentType string
}

func (cbc *CircuitBreakerClient) blob(entity, operation string, fn func() ([]byte, string, error)) ([]byte, string, error) {
	result, err := cbc.execute(entity, operation, func() (interface{}, error) {
		data, contentType, err := fn()
		if err != nil {
			return nil, err
		}
		return &blobResult{data: data, contentType: contentType}, nil
	})
	typed, err := castResult[blobResult](result, err)
	if err != nil {
		return nil, "", err
	}
	return typed.data, typed.contentType, nil
}

func (cbc *CircuitBreakerClient) ExportTheme(ctx context.Context, token, themeID, format string) ([]byte, string, error) {
	return cbc.blob("files", "export", func() ([]byte, string, error) {
		return cbc.client.ExportTheme(ctx, token, themeID, format)
	})
}

func (cbc *CircuitBreakerClient) Avatar(ctx context.Context, token, fileID string) ([]byte, string, error) {
	return cbc.blob("files", "avatar", func() ([]byte, string, error) {
		return cbc.client.Avatar(ctx, token, fileID)
	})
}

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitType string

const (
	RateLimitTypeDefault RateLimitType = "default"
	RateLimitTypeOrder   RateLimitType = "order"
)

// Config holds rate limiting configuration
type Config struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	OrderRequests   int           `json:"order_requests"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *redis.Client
	config *Config
}

func NewRateLimiter(client *redis.Client, config *Config) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// IsAllowed checks whether the client is within its window allowance.
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error) {
	limit := r.getLimit(limitType)
	resetTime := time.Now().Add(r.config.WindowDuration).Unix()

	if !r.config.Enabled {
		return &Result{Allowed: true, Limit: limit, Remaining: limit, ResetTime: resetTime}, nil
	}

	key := fmt.Sprintf("keepsake:ratelimit:%s:%s", limitType, clientIP)

	// Fixed window: INCR then set the window expiry on the first hit.
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit incr failed: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.config.WindowDuration).Err(); err != nil {
			return nil, fmt.Errorf("rate limit expire failed: %w", err)
		}
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   int(count) <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}, nil
}

func (r *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypeOrder:
		return r.config.OrderRequests
	default:
		return r.config.DefaultRequests
	}
}

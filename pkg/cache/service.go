package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

type Service interface {
	// Generic cache operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool

	// Cache-aside pattern helper
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error

	// Health check
	Ping(ctx context.Context) error
}

type service struct {
	client *redis.Client
}

func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (s *service) Exists(ctx context.Context, key string) bool {
	n, err := s.client.Exists(ctx, key).Result()
	return err == nil && n > 0
}

func (s *service) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	err := s.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return err
	}

	value, err := fetcher()
	if err != nil {
		return fmt.Errorf("cache fetcher error: %w", err)
	}

	if err := s.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

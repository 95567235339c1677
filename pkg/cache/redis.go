package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration
type Config struct {
	Address  string // Redis server address (host:port)
	Password string // Redis password (empty if no password)
	DB       int    // Redis database number (0-15)
}

// NewClient connects to Redis with the provided configuration and verifies
// the connection before returning.
func NewClient(cfg Config) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:     10,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

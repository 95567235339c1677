package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keepsake/pkg/cache"
)

// ErrSessionNotFound is returned for unknown or expired session keys.
var ErrSessionNotFound = errors.New("cart session not found")

const (
	sessionKeyPrefix = "keepsake:cart:"
	orderKeyPrefix   = "keepsake:order:"
)

// Store keeps cart sessions and accepted-order summaries in Redis. Sessions
// expire with the checkout window; order records live longer so a slow
// payment confirmation can still find them.
type Store struct {
	cache      cache.Service
	sessionTTL time.Duration
	orderTTL   time.Duration
}

// NewStore creates a session store over the shared cache service.
func NewStore(c cache.Service, sessionTTL, orderTTL time.Duration) *Store {
	if sessionTTL <= 0 {
		sessionTTL = 2 * time.Hour
	}
	if orderTTL <= 0 {
		orderTTL = 48 * time.Hour
	}
	return &Store{cache: c, sessionTTL: sessionTTL, orderTTL: orderTTL}
}

// SaveSession stores a cart session under its session key.
func (s *Store) SaveSession(ctx context.Context, session Session) error {
	if session.Cart.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+session.Cart.SessionKey, session, s.sessionTTL); err != nil {
		return fmt.Errorf("failed to save cart session: %w", err)
	}
	return nil
}

// GetSession loads the cart session for a session key.
func (s *Store) GetSession(ctx context.Context, sessionKey string) (*Session, error) {
	var session Session
	err := s.cache.Get(ctx, sessionKeyPrefix+sessionKey, &session)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}
	return &session, nil
}

// SaveOrderRecord persists the accepted-order summary the fulfillment
// consumer reads after payment confirmation. Satisfies orders.OrderRecorder.
func (s *Store) SaveOrderRecord(ctx context.Context, sessionKey string, record any) error {
	if err := s.cache.Set(ctx, orderKeyPrefix+sessionKey, record, s.orderTTL); err != nil {
		return fmt.Errorf("failed to save order record: %w", err)
	}
	return nil
}

// LoadOrderRecord reads the accepted-order summary for a session into dest.
// Satisfies fulfillment.OrderLoader.
func (s *Store) LoadOrderRecord(ctx context.Context, sessionKey string, dest any) error {
	err := s.cache.Get(ctx, orderKeyPrefix+sessionKey, dest)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to load order record: %w", err)
	}
	return nil
}

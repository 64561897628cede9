package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bookly-be/internal/cache"
)

// Store tracks a per-user revocation watermark. Logging out stamps the
// watermark; every token issued at or before it is dead. Entries only need
// to live as long as the longest token TTL.
type Store interface {
	RevokeAll(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

type redisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisStore creates a token store backed by the shared cache client.
// ttl should match the JWT lifetime.
func NewRedisStore(c cache.Cache, ttl time.Duration) Store {
	return &redisStore{cache: c, ttl: ttl}
}

func revocationKey(userID string) string {
	return fmt.Sprintf("auth:revoked_at:%s", userID)
}

func (s *redisStore) RevokeAll(ctx context.Context, userID string) error {
	return s.cache.Set(ctx, revocationKey(userID), time.Now().UTC().Format(time.RFC3339Nano), s.ttl)
}

func (s *redisStore) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := s.cache.Get(ctx, revocationKey(userID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	revokedAt, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return false, fmt.Errorf("failed to parse revocation watermark: %w", err)
	}
	return !issuedAt.After(revokedAt), nil
}

type memoryStore struct {
	mu        sync.RWMutex
	revokedAt map[string]time.Time
}

// NewMemoryStore creates an in-process token store. Used as a fallback when
// Redis is unavailable; revocations do not survive a restart.
func NewMemoryStore() Store {
	return &memoryStore{revokedAt: make(map[string]time.Time)}
}

func (s *memoryStore) RevokeAll(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedAt[userID] = time.Now().UTC()
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	revokedAt, ok := s.revokedAt[userID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(revokedAt), nil
}

package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/civicteams/server/internal/port/outbound"
)

const idempotencyPrefix = "civic:idempotency:"

// IdempotencyStore implements IdempotencyStorePort using Redis.
type IdempotencyStore struct {
	client goredis.Cmdable
}

// NewIdempotencyStore creates a Redis-backed idempotency store.
func NewIdempotencyStore(client goredis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *IdempotencyStore) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, idempotencyPrefix+key+":lock", "1", ttl).Result()
}

func (s *IdempotencyStore) Unlock(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyPrefix+key+":lock").Err()
}

func (s *IdempotencyStore) Put(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, idempotencyPrefix+key, data, ttl).Err()
}

var _ outbound.IdempotencyStorePort = (*IdempotencyStore)(nil)

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/civicteams/server/internal/port/outbound"
)

type idempotencyEntry struct {
	data    []byte
	expires time.Time
}

// IdempotencyStore is a process-local IdempotencyStorePort for single-node
// deployments and tests.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	locks   map[string]time.Time
	now     func() time.Time
}

// NewIdempotencyStore creates an empty store.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		entries: make(map[string]idempotencyEntry),
		locks:   make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *IdempotencyStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if s.now().After(e.expires) {
		delete(s.entries, key)
		return nil, false, nil
	}
	return e.data, true, nil
}

func (s *IdempotencyStore) Lock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, held := s.locks[key]; held && s.now().Before(until) {
		return false, nil
	}
	s.locks[key] = s.now().Add(ttl)
	return true, nil
}

func (s *IdempotencyStore) Unlock(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, key)
	return nil
}

func (s *IdempotencyStore) Put(_ context.Context, key string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = idempotencyEntry{data: append([]byte(nil), data...), expires: s.now().Add(ttl)}
	return nil
}

var _ outbound.IdempotencyStorePort = (*IdempotencyStore)(nil)

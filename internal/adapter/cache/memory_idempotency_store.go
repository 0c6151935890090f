package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pirayth/gardenshop/internal/usecase"
)

// MemoryIdempotencyStore backs checkout idempotency in dev mode, when no
// redis is configured. Entries expire lazily on access.
type MemoryIdempotencyStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]memEntry
}

type memEntry struct {
	value   string
	expires time.Time
}

func NewMemoryIdempotencyStore(ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{ttl: ttl, data: make(map[string]memEntry)}
}

func (s *MemoryIdempotencyStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := "lock:" + scope + ":" + key
	if e, ok := s.data[k]; ok && time.Now().Before(e.expires) {
		return false, nil
	}
	s.data[k] = memEntry{value: "1", expires: time.Now().Add(s.ttl)}
	return true, nil
}

func (s *MemoryIdempotencyStore) Remember(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data["map:"+scope+":"+key] = memEntry{value: value, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryIdempotencyStore) Recall(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data["map:"+scope+":"+key]
	if !ok || time.Now().After(e.expires) {
		return "", false, nil
	}
	return e.value, true, nil
}

var _ usecase.IdempotencyStore = (*MemoryIdempotencyStore)(nil)

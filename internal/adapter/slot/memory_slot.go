package slot

import (
	"context"
	"sync"

	"github.com/pirayth/gardenshop/internal/usecase"
)

// MemorySlot is a process-local slot for dev mode and tests. Carts do not
// survive a restart.
type MemorySlot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{data: make(map[string][]byte)}
}

func (s *MemorySlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *MemorySlot) Write(_ context.Context, key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.data[key] = cp
	return nil
}

var _ usecase.CartSlot = (*MemorySlot)(nil)

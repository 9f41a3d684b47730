package lockstore

import (
	"context"
	"sync"
	"time"

	"booking-flow/internal/pkg/clock"
)

// MemoryStore keeps slot locks in process. Expiry is evaluated against the
// clock on every read, so no background sweeper is needed.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	expires map[string]time.Time
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{clock: clk, expires: make(map[string]time.Time)}
}

func (m *MemoryStore) Lock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	if m.heldLocked(key, now) {
		return false, nil
	}
	m.expires[key] = now.Add(ttl)
	return true, nil
}

func (m *MemoryStore) IsLocked(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heldLocked(key, m.clock.Now()), nil
}

func (m *MemoryStore) LockedAmong(_ context.Context, keys []string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	out := make(map[string]bool)
	for _, k := range keys {
		if m.heldLocked(k, now) {
			out[k] = true
		}
	}
	return out, nil
}

func (m *MemoryStore) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expires, key)
	return nil
}

// heldLocked must be called with mu held; it drops the entry once expired.
func (m *MemoryStore) heldLocked(key string, now time.Time) bool {
	exp, ok := m.expires[key]
	if !ok {
		return false
	}
	if !now.Before(exp) {
		delete(m.expires, key)
		return false
	}
	return true
}

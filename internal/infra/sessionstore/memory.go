package sessionstore

import (
	"sort"
	"sync"

	"booking-flow/internal/usecase/shared"
)

// MemoryStore keeps wizard sessions in process; sessions own timers and
// cannot be persisted elsewhere.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*shared.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*shared.Session)}
}

func (m *MemoryStore) Save(s *shared.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
}

func (m *MemoryStore) Get(id string) (*shared.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) Delete(id string) (*shared.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	return s, ok
}

// List returns a snapshot ordered by session id.
func (m *MemoryStore) List() []*shared.Session {
	m.mu.RLock()
	out := make([]*shared.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

package tracker

import (
	"context"
	"sync"
)

// MemoryStore keeps slots in process memory. Default backend for single
// instance deployments, the CLI, and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (s *MemoryStore) GetSlot(_ context.Context, sessionID, name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots, ok := s.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	value, ok := slots[name]
	return value, ok, nil
}

func (s *MemoryStore) SetSlots(_ context.Context, sessionID string, slots map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.sessions[sessionID]
	if !ok {
		existing = make(map[string]string, len(slots))
		s.sessions[sessionID] = existing
	}
	for name, value := range slots {
		existing[name] = value
	}
	return nil
}

// Reset drops a session entirely. The dialogue host owns session lifetime;
// this exists for the CLI and tests.
func (s *MemoryStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type memoryEntry struct {
	session  entity.Session
	deadline time.Time
}

// memoryStore keeps sessions in process. Entries past their deadline are
// treated as absent and dropped on access.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an in-process SessionRepository.
func NewMemoryStore() repository.SessionRepository {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]memoryEntry),
		now:      now,
	}
}

func (s *memoryStore) Save(_ context.Context, session *entity.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = memoryEntry{
		session:  *session,
		deadline: s.now().Add(ttl),
	}

	return nil
}

func (s *memoryStore) Find(_ context.Context, id string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if s.now().After(entry.deadline) {
		delete(s.sessions, id)

		return nil, repository.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

// Sweep drops every entry past its deadline and returns how many went.
func (s *memoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.sessions {
		if now.After(entry.deadline) {
			delete(s.sessions, id)
			dropped++
		}
	}

	return dropped
}

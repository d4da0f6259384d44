package session

import (
	"context"
	"sync"

	"vanta/pkg/platform/sentinel"
)

// MemoryDraftStore keeps drafts in process memory. It is the default for a
// single-instance deployment and for tests; multi-instance deployments want
// the Redis store so any instance can serve any browser session.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewMemoryDraftStore creates an empty in-memory draft store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]Draft)}
}

func (s *MemoryDraftStore) Get(_ context.Context, key string) (Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if draft, ok := s.drafts[key]; ok {
		return draft, nil
	}
	return Draft{}, sentinel.ErrNotFound
}

func (s *MemoryDraftStore) Put(_ context.Context, key string, draft Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = draft
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}

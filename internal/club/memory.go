package club

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps members in memory. Used by tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	members map[int64]Member
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{members: make(map[int64]Member)}
}

// IsMember reports whether the chat is enrolled.
func (s *MemoryStore) IsMember(_ context.Context, chatID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[chatID]
	return ok, nil
}

// Find returns the member record or nil.
func (s *MemoryStore) Find(_ context.Context, chatID int64) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[chatID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Append commits the member unless the chat is already enrolled.
// The check-and-insert runs under one lock, matching the commit-time
// uniqueness guarantee of the Postgres store.
func (s *MemoryStore) Append(_ context.Context, m Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[m.ChatID]; ok {
		return ErrDuplicate
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	s.members[m.ChatID] = m
	return nil
}

// Count returns the number of enrolled members.
func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.members)), nil
}

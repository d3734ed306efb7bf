package catalog

import (
	"context"
	"sync"
)

// MemorySource serves a fixed catalog from memory. Used by tests and local
// development; preserves insertion order of categories.
type MemorySource struct {
	mu         sync.RWMutex
	categories []string
	items      map[string][]Item
}

// NewMemorySource returns an empty in-memory catalog.
func NewMemorySource() *MemorySource {
	return &MemorySource{items: make(map[string][]Item)}
}

// AddItem appends an item to its category, assigning the next position.
func (s *MemorySource) AddItem(category string, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[category]; !ok {
		s.categories = append(s.categories, category)
	}
	item.Category = category
	item.Position = len(s.items[category])
	s.items[category] = append(s.items[category], item)
}

// Categories returns category names in insertion order.
func (s *MemorySource) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// Items returns the items of one category in insertion order.
func (s *MemorySource) Items(_ context.Context, category string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.items[category]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

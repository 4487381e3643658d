package config

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps namespaces in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]map[string]any
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]map[string]any)}
}

// Seed replaces a namespace with data, bypassing Save. Useful for fixtures.
func (s *MemoryStore) Seed(name string, data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = maps.Clone(data)
}

// Get returns a snapshot of the namespace. Unknown namespaces are empty.
func (s *MemoryStore) Get(ctx context.Context, name string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newConfig(name, maps.Clone(s.items[name]), s), nil
}

func (s *MemoryStore) persist(_ context.Context, name string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = data
	return nil
}

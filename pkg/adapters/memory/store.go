package memory

import (
	"context"
	"sync"
)

// Store implements ports.ParamStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]any
	mu   sync.RWMutex
}

// NewStore creates a store seeded with a copy of params.
// Keys are fully qualified ("smoother.sample_duration").
func NewStore(params map[string]any) *Store {
	data := make(map[string]any, len(params))
	for k, v := range params {
		data[k] = v
	}
	return &Store{data: data}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Keys returns the stored keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

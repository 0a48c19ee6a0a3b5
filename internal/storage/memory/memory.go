// Package memory provides an in-memory KVStore used in tests and as a
// throwaway backend for demo runs.
package memory

import (
	"context"
	"sync"
)

// Store is a map-backed KVStore safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

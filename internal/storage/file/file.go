// Package file provides a KVStore persisted as a single JSON document
// on local disk. It is the default backend, standing in for the
// browser localStorage the data model was designed around.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store keeps the full key space in memory and rewrites the backing
// file atomically (temp file + rename) on every mutation. Suitable for
// the single-session workloads this application targets.
type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

// Open loads the store at path, creating parent directories as needed.
// A missing file yields an empty store; a corrupt file is an error so
// the operator can decide, rather than silently losing data.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file store: creating data directory: %w", err)
	}

	data := make(map[string]string)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("file store: reading %s: %w", path, err)
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("file store: %s is not a valid data file: %w", path, err)
		}
	}

	return &Store{path: path, data: data}, nil
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
	prev, had := s.data[key]
	s.data[key] = value
	if err := s.flushLocked(); err != nil {
		// keep the in-memory view consistent with disk
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.flushLocked(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("file store: encoding data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("file store: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("file store: replacing %s: %w", s.path, err)
	}
	return nil
}

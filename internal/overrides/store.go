// Package overrides persists user-chosen safety tiers for specific
// paths, independently of scans.
package overrides

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

// FileStore is a YAML-file-backed override store keyed by absolute path.
// Writes are last-writer-wins; every mutation is flushed to disk. A
// mutex keeps single-key read-modify-write atomic for concurrent
// callers.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]safety.Tier
}

var _ safety.OverrideStore = (*FileStore)(nil)

// Open loads the store at path, starting empty when the file does not
// exist yet.
func Open(path string) (*FileStore, error) {
	store := &FileStore{path: path, entries: map[string]safety.Tier{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &store.entries); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	if store.entries == nil {
		store.entries = map[string]safety.Tier{}
	}
	return store, nil
}

// Get returns the override for path, if one exists.
func (s *FileStore) Get(path string) (safety.Tier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tier, ok := s.entries[path]
	return tier, ok
}

// Set records an override for path and persists the store.
func (s *FileStore) Set(path string, tier safety.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[path] = tier
	return s.save()
}

// Remove deletes the override for path, if any, and persists the store.
func (s *FileStore) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, path)
	return s.save()
}

// Clear removes every override and persists the empty store.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]safety.Tier{}
	return s.save()
}

// All returns a copy of every override, for listing.
func (s *FileStore) All() map[string]safety.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]safety.Tier, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *FileStore) save() error {
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create overrides dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write overrides %s: %w", s.path, err)
	}
	return nil
}

// Memory is an in-memory override store for tests and embedding hosts
// that bring their own persistence.
type Memory struct {
	mu      sync.Mutex
	entries map[string]safety.Tier
}

var _ safety.OverrideStore = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: map[string]safety.Tier{}}
}

// Get returns the override for path, if one exists.
func (m *Memory) Get(path string) (safety.Tier, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tier, ok := m.entries[path]
	return tier, ok
}

// Set records an override for path.
func (m *Memory) Set(path string, tier safety.Tier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = tier
	return nil
}

// Remove deletes the override for path.
func (m *Memory) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, path)
	return nil
}

// Clear removes every override.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[string]safety.Tier{}
	return nil
}

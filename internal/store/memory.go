// internal/store/memory.go
//
// In-memory implementation of the Cache interface.
// Used when no DB_PATH is configured, and in tests.
//
// Characteristics:
//   - Stores string values keyed by string in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// Cache is a small key/value store for provider lookups.
// Implementations may be backed by memory (this file) or SQLite.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores or replaces the value for key.
	Put(ctx context.Context, key, value string) error
}

// memory is an in-memory map-based Cache implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]string // keyed by cache key
}

// NewMemoryCache constructs a new in-memory Cache.
func NewMemoryCache() Cache {
	return &memory{entries: make(map[string]string)}
}

// Get looks up a value by key.
func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

// Put adds or updates the value in the map.
func (m *memory) Put(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

package session

import (
	"context"
	"sync"
)

// Store is the key-value abstraction behind the session carrier. The wizard
// never talks to it directly; the Carrier wraps every call and swallows
// failures so a broken store degrades to URL-only operation.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value, replacing any previous one.
	Set(ctx context.Context, key string, value string) error
	// Clear removes the key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}

// MemoryStore is a process-local Store, used in tests and single-instance
// deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

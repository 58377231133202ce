package store

import (
	"context"
	"sync"
)

// KeySuffix is appended to a service name to form its token key.
const KeySuffix = "_access_token"

// Key returns the durable key holding service's access token.
func Key(service string) string {
	return service + KeySuffix
}

// Store is a pluggable persistence layer for access tokens.
// Get reports absent for both missing keys and backend failures.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type memoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.tokens[key]
	return value, ok
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[key] = value
	return nil
}

func (m *memoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, key)
	return nil
}

// NewMemoryStore returns a process-local store, optionally seeded with values.
func NewMemoryStore(seed ...map[string]string) Store {
	ret := &memoryStore{tokens: map[string]string{}}
	for _, values := range seed {
		for k, v := range values {
			ret.tokens[k] = v
		}
	}
	return ret
}

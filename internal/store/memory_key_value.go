package store

import (
	"context"
	"sync"
)

type memoryKeyValueStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValueStorage returns a process-scoped tier. Its contents are
// gone when the process exits.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{
		values: make(map[string]string),
	}
}

func (m *memoryKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryKeyValueStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

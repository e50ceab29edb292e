package kv

import (
	"context"
	"sync"

	"github.com/nutresa-radar/backend/internal/domain"
)

// Memory is a process-local key-value store. It backs the health
// registry in tests and in single-instance deployments where losing
// health history on restart is acceptable.
type Memory struct {
	data  map[string]string
	mutex sync.RWMutex
}

// NewMemory creates an empty in-memory key-value store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the stored value or domain.ErrKeyNotFound.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value under the key, replacing any previous value.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data[key] = value
	return nil
}

package repository

import (
	"context"
	"sync"

	"storefront/internal/usecase/interfaces"
)

// MemoryKVStore keeps values in process memory. It is the default backend for
// local runs and the one every use case test writes through.
type MemoryKVStore struct {
	mu        sync.RWMutex
	namespace string
	values    map[string]string
}

var _ interfaces.IKeyValueStore = (*MemoryKVStore)(nil)

func NewMemoryKVStore(namespace string) *MemoryKVStore {
	return &MemoryKVStore{
		namespace: namespace,
		values:    make(map[string]string),
	}
}

func (s *MemoryKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[namespacedKey(s.namespace, key)]
	return v, ok, nil
}

func (s *MemoryKVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[namespacedKey(s.namespace, key)] = value
	return nil
}

func (s *MemoryKVStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, namespacedKey(s.namespace, key))
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisKVStore keeps each storage key as a plain Redis string without TTL.
type RedisKVStore struct {
	client    redis.Cmdable
	namespace string
}

var _ interfaces.IKeyValueStore = (*RedisKVStore)(nil)

func NewRedisKVStore(client redis.Cmdable, namespace string) *RedisKVStore {
	return &RedisKVStore{client: client, namespace: namespace}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, namespacedKey(s.namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, namespacedKey(s.namespace, key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, namespacedKey(s.namespace, key)).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}

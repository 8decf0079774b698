package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/motorista-real/backend/internal/application/adapter"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// maxUpdateRetries bounds optimistic retries on WATCH conflicts.
const maxUpdateRetries = 16

// redisStore implements adapter.BlobStore over Redis.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a blob store backed by the given Redis client. All
// keys are namespaced under the prefix.
func NewRedisStore(client *redis.Client, prefix string) adapter.BlobStore {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.fullKey(key), value, 0).Err()
}

// Update applies fn under WATCH so a concurrent write to the same key aborts
// the MULTI/EXEC and the read-modify-write is retried on fresh data.
func (s *redisStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	fullKey := s.fullKey(key)

	txn := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Bytes()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return err
			}
			current = nil
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txn, fullKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update of %q: %w", key, domainerror.ErrStoreConflict)
}

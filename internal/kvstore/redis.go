package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements [Store] with plain GET/SET/DEL commands. Values never expire server-side;
// freshness is the caller's concern.
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing client. The store closes the client in [RedisStore.Close].
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrapErr(OpGet, key, err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return wrapErr(OpSet, key, r.rdb.Set(ctx, key, value, 0).Err())
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	return wrapErr(OpRemove, key, r.rdb.Del(ctx, key).Err())
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

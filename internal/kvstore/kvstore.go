// Package kvstore provides the on-device key-value persistence used by the navigation cache,
// the session and the preference services.
//
// Every backend implements [Store]. Reads of a missing key return [ErrNotFound]; every other
// failure is reported as a [*StorageError] carrying the operation and key, so callers that must
// never fail (the navigation cache) can log the cause and degrade to a miss.
//
// Backends:
//   - [SQLiteStore] : the default, a single kv_store table in the app database
//   - [RedisStore] : a shared Redis instance, useful when several devices share one profile
//   - [MemoryStore] : process-local, for tests and --ephemeral runs
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/desertthunder/spotui/internal/shared"
)

// ErrNotFound is returned by [Store.Get] when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is the key-value persistence provider.
type Store interface {
	// Get returns the value stored under key, or [ErrNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying connection.
	Close() error
}

// Op names the store operation that failed.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// StorageError describes a failed store operation.
type StorageError struct {
	Op  Op
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("kvstore %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func wrapErr(op Op, key string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Key: key, Err: err}
}

// IsNotFound reports whether err means the key was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// prefixed namespaces logical keys before handing them to the wrapped store.
type prefixed struct {
	Store
	prefix string
}

// Prefixed returns a [Store] that prepends prefix to every key. An empty prefix returns s unchanged.
func Prefixed(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &prefixed{Store: s, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, error) {
	return p.Store.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.Store.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.Store.Remove(ctx, p.prefix+key)
}

// Open builds the backend selected by cfg.Storage.Driver and applies the configured key prefix.
func Open(ctx context.Context, cfg *shared.Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch strings.ToLower(cfg.Storage.Driver) {
	case shared.DriverSQLite, "":
		db, dbErr := shared.OpenDatabase(ctx, cfg)
		if dbErr != nil {
			return nil, fmt.Errorf("%w: %w", shared.ErrStorageUnavailable, dbErr)
		}
		store = NewSQLiteStore(db)
	case shared.DriverRedis:
		store, err = DialRedis(ctx, cfg.Redis.URL)
	case shared.DriverMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownDriver, cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	return Prefixed(store, cfg.Storage.KeyPrefix), nil
}

// DialRedis connects to the Redis instance at url and verifies it with a PING.
func DialRedis(ctx context.Context, url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: redis url: %w", shared.ErrInvalidConfig, err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", shared.ErrStorageUnavailable, err)
	}

	return NewRedisStore(client), nil
}

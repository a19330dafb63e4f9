// Package navcache remembers which drawer screen was last viewed so the navigator can offer it back
// on the next launch.
//
// The cache holds a single entry under [Key]. Freshness is checked lazily at read time against the
// configured TTL; stale entries stay in storage until the next [Cache.Save] overwrites them.
// Storage failures are logged and never reach the caller: a missing restore hint must not block
// startup.
package navcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/kvstore"
)

// Key is the logical storage key of the cached entry.
const Key = "navigation_cache"

// DefaultTTL is the freshness window of a cached entry.
const DefaultTTL = 24 * time.Hour

// ErrEmpty is returned by [Cache.Peek] when nothing has been saved.
var ErrEmpty = errors.New("no navigation state saved")

// Entry is the persisted JSON shape.
type Entry struct {
	LastScreen string `json:"lastScreen"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
}

// Time returns the entry timestamp as a [time.Time].
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Age returns how old the entry is relative to now, saturating at the largest [time.Duration].
func (e Entry) Age(now time.Time) time.Duration {
	ms := now.UnixMilli()
	age := ms - e.Timestamp
	if (e.Timestamp < 0 && age < ms) || age > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(age) * time.Millisecond
}

// Fresh reports whether the entry is younger than ttl at now.
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return e.Timestamp > now.UnixMilli()-ttl.Milliseconds()
}

// Option configures a [Cache].
type Option func(*Cache)

// WithTTL overrides [DefaultTTL]. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// Cache is the navigation-state cache.
type Cache struct {
	store  kvstore.Store
	logger *log.Logger
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Cache over store.
func New(store kvstore.Store, logger *log.Logger, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		logger: logger.WithPrefix("navcache"),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the active freshness window.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Save records screen as the last visited screen, stamped with the current time.
func (c *Cache) Save(ctx context.Context, screen string) {
	if screen == "" {
		c.logger.Warn("ignoring empty screen name")
		return
	}

	data, err := json.Marshal(Entry{LastScreen: screen, Timestamp: c.now().UnixMilli()})
	if err != nil {
		c.logger.Error("failed to encode navigation state", "screen", screen, "error", err)
		return
	}

	if err := c.store.Set(ctx, Key, string(data)); err != nil {
		c.logger.Error("failed to save navigation state", "screen", screen, "error", err)
		return
	}

	c.logger.Debug("saved navigation state", "screen", screen)
}

// Get returns the last saved screen if it is still fresh.
func (c *Cache) Get(ctx context.Context) (string, bool) {
	entry, err := c.Peek(ctx)
	switch {
	case errors.Is(err, ErrEmpty):
		return "", false
	case err != nil:
		c.logger.Error("failed to read navigation state", "error", err)
		return "", false
	}

	now := c.now()
	if !entry.Fresh(now, c.ttl) {
		c.logger.Debug("navigation state expired", "screen", entry.LastScreen, "age", entry.Age(now))
		return "", false
	}

	return entry.LastScreen, true
}

// Clear removes the cached entry.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.store.Remove(ctx, Key); err != nil {
		c.logger.Error("failed to clear navigation state", "error", err)
		return
	}
	c.logger.Debug("cleared navigation state")
}

// Peek returns the stored entry regardless of its age.
//
// Unlike the other methods it reports failures, returning [ErrEmpty] when nothing is stored.
func (c *Cache) Peek(ctx context.Context) (Entry, error) {
	raw, err := c.store.Get(ctx, Key)
	if kvstore.IsNotFound(err) {
		return Entry{}, ErrEmpty
	}
	if err != nil {
		return Entry{}, err
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Entry{}, fmt.Errorf("corrupt navigation state: %w", err)
	}
	return entry, nil
}

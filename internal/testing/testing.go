// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/kvstore"
)

// ErrInjected is the cause carried by every failure a [FailingStore] produces.
var ErrInjected = errors.New("injected storage failure")

// FailingStore wraps a [kvstore.MemoryStore] and fails the operations switched on with [FailingStore.Fail].
type FailingStore struct {
	*kvstore.MemoryStore

	mu    sync.Mutex
	fail  map[kvstore.Op]bool
	calls map[kvstore.Op]int
}

var _ kvstore.Store = (*FailingStore)(nil)

// NewFailingStore creates a store that succeeds until told otherwise.
func NewFailingStore() *FailingStore {
	return &FailingStore{
		MemoryStore: kvstore.NewMemoryStore(),
		fail:        make(map[kvstore.Op]bool),
		calls:       make(map[kvstore.Op]int),
	}
}

// Fail makes every listed operation return a [*kvstore.StorageError].
func (f *FailingStore) Fail(ops ...kvstore.Op) *FailingStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, op := range ops {
		f.fail[op] = true
	}
	return f
}

// Heal clears every injected failure.
func (f *FailingStore) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.fail)
}

// Calls returns how many times op was attempted.
func (f *FailingStore) Calls(op kvstore.Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FailingStore) check(op kvstore.Op, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.fail[op] {
		return &kvstore.StorageError{Op: op, Key: key, Err: ErrInjected}
	}
	return nil
}

func (f *FailingStore) Get(ctx context.Context, key string) (string, error) {
	if err := f.check(kvstore.OpGet, key); err != nil {
		return "", err
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *FailingStore) Set(ctx context.Context, key, value string) error {
	if err := f.check(kvstore.OpSet, key); err != nil {
		return err
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *FailingStore) Remove(ctx context.Context, key string) error {
	if err := f.check(kvstore.OpRemove, key); err != nil {
		return err
	}
	return f.MemoryStore.Remove(ctx, key)
}

// NewBufferLogger returns a debug-level logger writing plain text to the returned buffer.
func NewBufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return logger, &buf
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

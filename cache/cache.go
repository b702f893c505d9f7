// Package cache stores serialized search reports keyed by request.
package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ErrMiss is returned by Get when the key is not present.
var ErrMiss = errors.New("cache: miss")

// Store is a byte-oriented key/value cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Key derives a compact cache key from the request parts.
func Key(parts ...string) string {
	digest := xxhash.New()
	for _, part := range parts {
		// Length prefix keeps ("ab","c") and ("a","bc") apart.
		_, _ = digest.WriteString(strconv.Itoa(len(part)))
		_, _ = digest.WriteString(":")
		_, _ = digest.WriteString(part)
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}

// DefaultCapacity is the entry limit of a Memory store built without WithCapacity.
const DefaultCapacity = 1024

// Memory is an in-process Store holding at most a fixed number of entries.
// When full, the oldest inserted entry is evicted first.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	entries  map[string][]byte
	order    []string
}

// MemoryOption customises a Memory store.
type MemoryOption func(*Memory)

// WithCapacity sets the entry limit; values below one are ignored.
func WithCapacity(capacity int) MemoryOption {
	return func(m *Memory) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

// NewMemory creates an empty in-process store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{capacity: DefaultCapacity, entries: make(map[string][]byte)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	return append([]byte(nil), value...), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		if len(m.order) >= m.capacity {
			delete(m.entries, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = append([]byte(nil), value...)
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Describe names the backend for logs, e.g. "memory" or "redis(localhost:6379)".
func Describe(store Store) string {
	switch s := store.(type) {
	case *Memory:
		return "memory"
	case *Redis:
		return "redis(" + s.client.Options().Addr + ")"
	}
	return "custom"
}

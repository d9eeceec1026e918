package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memEntry struct {
	value    []byte
	expireAt time.Time // zero => no expiry
}

// MemStore is an in-process Store. It is the default backend for library use
// and tests. Expired entries are dropped lazily on read.
type MemStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]memEntry)}
}

func (m *MemStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expireAt.IsZero() && time.Now().After(e.expireAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *MemStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemStore) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	m.mu.Unlock()
	return nil
}

// Len reports live (non-expired) entries. Test helper.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	now := time.Now()
	for _, e := range m.entries {
		if e.expireAt.IsZero() || now.Before(e.expireAt) {
			n++
		}
	}
	return n
}

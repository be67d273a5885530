package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/shortly-go/internal/shortener"
)

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is an in-memory implementation of shortener.Store with lazy
// expiry. It backs tests and single-process deployments.
type MemoryStore struct {
	mu      sync.Mutex
	forward map[string]entry
	reverse map[string]entry
	now     func() time.Time
}

// NewMemoryStore creates a new in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock creates a store with an injected clock so tests
// can drive expiry deterministically.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		forward: make(map[string]entry),
		reverse: make(map[string]entry),
		now:     now,
	}
}

func (m *MemoryStore) WriteForward(_ context.Context, code, url string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.forward[code] = m.newEntry(url, ttl)

	return nil
}

func (m *MemoryStore) ReadForward(_ context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.get(m.forward, code)
}

func (m *MemoryStore) WriteReverse(_ context.Context, url, code string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reverse[url] = m.newEntry(code, ttl)

	return nil
}

func (m *MemoryStore) ReadReverse(_ context.Context, url string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.get(m.reverse, url)
}

func (m *MemoryStore) ExistsForward(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.get(m.forward, code)
	if err != nil {
		return false, nil
	}

	return true, nil
}

func (m *MemoryStore) TTLRemaining(_ context.Context, code string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.forward[code]
	if !ok || m.expired(e) {
		return shortener.KeyMissing, nil
	}

	if e.expiresAt.IsZero() {
		return shortener.NoExpiry, nil
	}

	return e.expiresAt.Sub(m.now()), nil
}

// Ping always succeeds; there is no connection to lose.
func (m *MemoryStore) Ping(_ context.Context) bool {
	return true
}

func (m *MemoryStore) newEntry(value string, ttl time.Duration) entry {
	if ttl == shortener.NoExpiry {
		return entry{value: value}
	}

	return entry{value: value, expiresAt: m.now().Add(ttl)}
}

// get evicts an expired entry before reporting absence. Callers hold mu.
func (m *MemoryStore) get(entries map[string]entry, key string) (string, error) {
	e, ok := entries[key]
	if !ok {
		return "", shortener.ErrNotFound
	}

	if m.expired(e) {
		delete(entries, key)

		return "", shortener.ErrNotFound
	}

	return e.value, nil
}

func (m *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}

// Compile-time check.
var _ shortener.Store = (*MemoryStore)(nil)

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/serroba/shortly-go/internal/shortener"
	"github.com/serroba/shortly-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

func TestMemoryStore_Forward(t *testing.T) {
	t.Run("writes and reads a mapping", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.WriteForward(context.Background(), "abc123", "https://example.com", shortener.DefaultTTL)
		require.NoError(t, err)

		url, err := s.ReadForward(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("returns ErrNotFound for an unknown code", func(t *testing.T) {
		s := store.NewMemoryStore()

		url, err := s.ReadForward(context.Background(), "zzz999")

		assert.Empty(t, url)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("overwrites an existing mapping", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", shortener.DefaultTTL)

		err := s.WriteForward(context.Background(), "abc123", "https://other.com", shortener.DefaultTTL)
		require.NoError(t, err)

		url, _ := s.ReadForward(context.Background(), "abc123")
		assert.Equal(t, "https://other.com", url)
	})

	t.Run("expires a mapping after its ttl", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(599 * time.Second)

		_, err := s.ReadForward(context.Background(), "abc123")
		require.NoError(t, err)

		clock.Advance(2 * time.Second)

		_, err = s.ReadForward(context.Background(), "abc123")
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("overwrite refreshes the ttl", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(500 * time.Second)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(400 * time.Second)

		url, err := s.ReadForward(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})
}

func TestMemoryStore_Reverse(t *testing.T) {
	t.Run("writes and reads a mapping", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.WriteReverse(context.Background(), "https://example.com", "abc123", shortener.DefaultTTL)
		require.NoError(t, err)

		code, err := s.ReadReverse(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "abc123", code)
	})

	t.Run("returns ErrNotFound for an unknown url", func(t *testing.T) {
		s := store.NewMemoryStore()

		code, err := s.ReadReverse(context.Background(), "https://unknown.com")

		assert.Empty(t, code)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("expires independently of the forward mapping", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)
		_ = s.WriteReverse(context.Background(), "https://example.com", "abc123", 60*time.Second)

		clock.Advance(120 * time.Second)

		_, err := s.ReadReverse(context.Background(), "https://example.com")
		assert.ErrorIs(t, err, shortener.ErrNotFound)

		url, err := s.ReadForward(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})
}

func TestMemoryStore_ExistsForward(t *testing.T) {
	t.Run("reports presence", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", shortener.DefaultTTL)

		exists, err := s.ExistsForward(context.Background(), "abc123")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("reports absence", func(t *testing.T) {
		s := store.NewMemoryStore()

		exists, err := s.ExistsForward(context.Background(), "zzz999")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reports absence after expiry", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(601 * time.Second)

		exists, err := s.ExistsForward(context.Background(), "abc123")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemoryStore_TTLRemaining(t *testing.T) {
	t.Run("returns KeyMissing for an absent key", func(t *testing.T) {
		s := store.NewMemoryStore()

		ttl, err := s.TTLRemaining(context.Background(), "zzz999")

		require.NoError(t, err)
		assert.Equal(t, shortener.KeyMissing, ttl)
	})

	t.Run("returns NoExpiry for a permanent key", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", shortener.NoExpiry)

		ttl, err := s.TTLRemaining(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, shortener.NoExpiry, ttl)
	})

	t.Run("returns the remaining lifetime for an expiring key", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(100 * time.Second)

		ttl, err := s.TTLRemaining(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, 500*time.Second, ttl)
	})

	t.Run("returns KeyMissing for an expired key", func(t *testing.T) {
		clock := newFakeClock()
		s := store.NewMemoryStoreWithClock(clock.Now)
		_ = s.WriteForward(context.Background(), "abc123", "https://example.com", 600*time.Second)

		clock.Advance(601 * time.Second)

		ttl, err := s.TTLRemaining(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, shortener.KeyMissing, ttl)
	})
}

func TestMemoryStore_Ping(t *testing.T) {
	s := store.NewMemoryStore()

	assert.True(t, s.Ping(context.Background()))
}

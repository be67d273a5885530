package shortener

import (
	"context"
	"time"
)

// DefaultTTL is applied to every mapping write unless overridden.
const DefaultTTL = 600 * time.Second

// TTL sentinels reported by Store.TTLRemaining, mirroring redis TTL reply
// semantics: -1 for a key without expiry, -2 for a missing key.
const (
	NoExpiry   = -1 * time.Second
	KeyMissing = -2 * time.Second
)

// Store is the keyed storage contract for the two mapping keyspaces: the
// forward index (code -> URL) and the reverse index (URL -> code). Nothing
// else in the service touches the underlying client directly.
type Store interface {
	// WriteForward upserts code -> url with the given expiry. Overwriting
	// refreshes the TTL. Pass NoExpiry for a permanent entry.
	WriteForward(ctx context.Context, code, url string, ttl time.Duration) error

	// ReadForward returns the URL stored for code, or ErrNotFound.
	ReadForward(ctx context.Context, code string) (string, error)

	// WriteReverse upserts url -> code with the given expiry.
	WriteReverse(ctx context.Context, url, code string, ttl time.Duration) error

	// ReadReverse returns the code stored for url, or ErrNotFound.
	ReadReverse(ctx context.Context, url string) (string, error)

	// ExistsForward reports whether a forward entry exists for code.
	ExistsForward(ctx context.Context, code string) (bool, error)

	// TTLRemaining returns the remaining lifetime of the forward entry for
	// code, NoExpiry for a permanent entry, or KeyMissing.
	TTLRemaining(ctx context.Context, code string) (time.Duration, error)

	// Ping probes the backend. Connectivity faults come back as false,
	// never as an error.
	Ping(ctx context.Context) bool
}

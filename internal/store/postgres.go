package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shortly-go/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of shortener.Store. Expiry is
// modelled with an expires_at column (NULL means no expiry); reads filter
// expired rows rather than deleting them.
//
// Expected schema:
//
//	CREATE TABLE forward_urls (
//	    code         TEXT PRIMARY KEY,
//	    original_url TEXT NOT NULL,
//	    expires_at   TIMESTAMPTZ
//	);
//	CREATE TABLE reverse_urls (
//	    original_url TEXT PRIMARY KEY,
//	    code         TEXT NOT NULL,
//	    expires_at   TIMESTAMPTZ
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) WriteForward(ctx context.Context, code, url string, ttl time.Duration) error {
	query := `
		INSERT INTO forward_urls (code, original_url, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE
		SET original_url = EXCLUDED.original_url, expires_at = EXCLUDED.expires_at
	`

	_, err := p.pool.Exec(ctx, query, code, url, expiresAt(ttl))

	return err
}

func (p *PostgresStore) ReadForward(ctx context.Context, code string) (string, error) {
	query := `
		SELECT original_url FROM forward_urls
		WHERE code = $1 AND (expires_at IS NULL OR expires_at > now())
	`

	return p.readOne(ctx, query, code)
}

func (p *PostgresStore) WriteReverse(ctx context.Context, url, code string, ttl time.Duration) error {
	query := `
		INSERT INTO reverse_urls (original_url, code, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (original_url) DO UPDATE
		SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at
	`

	_, err := p.pool.Exec(ctx, query, url, code, expiresAt(ttl))

	return err
}

func (p *PostgresStore) ReadReverse(ctx context.Context, url string) (string, error) {
	query := `
		SELECT code FROM reverse_urls
		WHERE original_url = $1 AND (expires_at IS NULL OR expires_at > now())
	`

	return p.readOne(ctx, query, url)
}

func (p *PostgresStore) ExistsForward(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM forward_urls
			WHERE code = $1 AND (expires_at IS NULL OR expires_at > now())
		)
	`

	var exists bool

	if err := p.pool.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresStore) TTLRemaining(ctx context.Context, code string) (time.Duration, error) {
	query := `
		SELECT expires_at FROM forward_urls
		WHERE code = $1 AND (expires_at IS NULL OR expires_at > now())
	`

	var deadline *time.Time

	err := p.pool.QueryRow(ctx, query, code).Scan(&deadline)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shortener.KeyMissing, nil
		}

		return 0, err
	}

	if deadline == nil {
		return shortener.NoExpiry, nil
	}

	return time.Until(*deadline), nil
}

// Ping probes the pool, downgrading any fault to false.
func (p *PostgresStore) Ping(ctx context.Context) bool {
	return p.pool.Ping(ctx) == nil
}

func (p *PostgresStore) readOne(ctx context.Context, query, arg string) (string, error) {
	var value string

	err := p.pool.QueryRow(ctx, query, arg).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shortener.ErrNotFound
		}

		return "", err
	}

	return value, nil
}

func expiresAt(ttl time.Duration) *time.Time {
	if ttl == shortener.NoExpiry {
		return nil
	}

	deadline := time.Now().Add(ttl)

	return &deadline
}

// Compile-time check.
var _ shortener.Store = (*PostgresStore)(nil)

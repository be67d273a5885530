package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxAttempts bounds unique-code generation per request.
const maxAttempts = 10

// Service orchestrates shortening and resolution against a Store. It holds
// no mutable state of its own beyond the injected store handle.
type Service struct {
	store    Store
	baseURL  string
	generate TokenGenerator
	ttl      time.Duration
	logger   *zap.Logger
}

// NewService creates a mapping service. A nil generator falls back to
// URLSafeToken and a zero ttl falls back to DefaultTTL.
func NewService(store Store, baseURL string, generate TokenGenerator, ttl time.Duration, logger *zap.Logger) *Service {
	if generate == nil {
		generate = URLSafeToken
	}

	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Service{
		store:    store,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		generate: generate,
		ttl:      ttl,
		logger:   logger,
	}
}

// Shorten returns the fully-qualified short URL for longURL, reusing the
// existing code when the URL was shortened before and is still unexpired.
//
// The reverse lookup and the forward reservation are separate round trips,
// so two concurrent calls for the same unseen URL may each mint a code. Both
// codes resolve until their TTLs lapse; the reverse index keeps whichever
// mapping was written last.
func (s *Service) Shorten(ctx context.Context, longURL string) (string, error) {
	code, err := s.store.ReadReverse(ctx, longURL)

	switch {
	case err == nil:
		return s.composeShortURL(code), nil
	case !errors.Is(err, ErrNotFound):
		return "", fmt.Errorf("reverse lookup: %w", err)
	}

	code, err = s.generateUniqueCode(ctx, longURL)
	if err != nil {
		return "", err
	}

	if err = s.store.WriteReverse(ctx, longURL, code, s.ttl); err != nil {
		return "", fmt.Errorf("write reverse mapping: %w", err)
	}

	return s.composeShortURL(code), nil
}

// Resolve returns the original URL for code, or ErrNotFound when the code
// was never issued or has expired. It performs no writes.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	url, err := s.store.ReadForward(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("forward lookup: %w", err)
	}

	return url, nil
}

// generateUniqueCode reserves a fresh code for longURL. A candidate that
// passes the existence check is written immediately, keeping the window
// between check and reservation to a single store round trip.
func (s *Service) generateUniqueCode(ctx context.Context, longURL string) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		exists, err := s.store.ExistsForward(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code existence: %w", err)
		}

		if exists {
			s.logger.Warn("short code collision",
				zap.String("code", code),
				zap.Int("attempt", attempt),
			)

			continue
		}

		if err = s.store.WriteForward(ctx, code, longURL, s.ttl); err != nil {
			return "", fmt.Errorf("write forward mapping: %w", err)
		}

		return code, nil
	}

	return "", &CodeSpaceExhaustedError{Attempts: maxAttempts}
}

func (s *Service) composeShortURL(code string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, code)
}

package shortener_test

import (
	"context"
	"errors"
	"time"

	"github.com/serroba/shortly-go/internal/shortener"
)

var errMock = errors.New("mock store error")

// mockStore implements shortener.Store with scripted existence results and
// operation counters, for exercising the generation retry path.
type mockStore struct {
	existsResults   []bool // consumed in order by ExistsForward
	existsErr       error
	readReverseErr  error
	writeForwardErr error
	writeReverseErr error

	existsCalls   int
	forwardWrites int
	reverseWrites int
}

func (m *mockStore) WriteForward(_ context.Context, _, _ string, _ time.Duration) error {
	m.forwardWrites++

	return m.writeForwardErr
}

func (m *mockStore) ReadForward(_ context.Context, _ string) (string, error) {
	return "", shortener.ErrNotFound
}

func (m *mockStore) WriteReverse(_ context.Context, _, _ string, _ time.Duration) error {
	m.reverseWrites++

	return m.writeReverseErr
}

func (m *mockStore) ReadReverse(_ context.Context, _ string) (string, error) {
	if m.readReverseErr != nil {
		return "", m.readReverseErr
	}

	return "", shortener.ErrNotFound
}

func (m *mockStore) ExistsForward(_ context.Context, _ string) (bool, error) {
	m.existsCalls++

	if m.existsErr != nil {
		return false, m.existsErr
	}

	if len(m.existsResults) > 0 {
		result := m.existsResults[0]
		m.existsResults = m.existsResults[1:]

		return result, nil
	}

	return false, nil
}

func (m *mockStore) TTLRemaining(_ context.Context, _ string) (time.Duration, error) {
	return shortener.KeyMissing, nil
}

func (m *mockStore) Ping(_ context.Context) bool {
	return true
}

// Compile-time check.
var _ shortener.Store = (*mockStore)(nil)

package shortener_test

import (
	"testing"

	"github.com/serroba/shortly-go/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSafeToken(t *testing.T) {
	t.Run("produces an 11-character url-safe token", func(t *testing.T) {
		token, err := shortener.URLSafeToken()

		require.NoError(t, err)
		assert.Len(t, token, 11)
		assert.Regexp(t, codePattern, token)
	})

	t.Run("produces distinct tokens", func(t *testing.T) {
		seen := make(map[string]bool)

		for i := 0; i < 100; i++ {
			token, err := shortener.URLSafeToken()

			require.NoError(t, err)
			assert.False(t, seen[token], "duplicate token %q", token)

			seen[token] = true
		}
	})
}

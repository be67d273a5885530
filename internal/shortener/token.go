package shortener

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenGenerator produces candidate short codes.
type TokenGenerator func() (string, error)

const tokenBytes = 8

// URLSafeToken generates a short code from tokenBytes of entropy, encoded
// with the unpadded base64url alphabet (11 characters).
func URLSafeToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

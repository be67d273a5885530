package shortener

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no mapping exists for a code or URL,
// either because it was never created or because it expired.
var ErrNotFound = errors.New("mapping not found")

// CodeSpaceExhaustedError is returned when code generation could not find a
// free candidate within the attempt bound. Hitting the bound points at a
// degraded random source or a nearly full code space, so it is surfaced
// rather than retried forever.
type CodeSpaceExhaustedError struct {
	Attempts int
}

func (e *CodeSpaceExhaustedError) Error() string {
	return fmt.Sprintf("failed to generate unique short code after %d attempts", e.Attempts)
}

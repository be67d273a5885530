package handlers

import (
	"net/url"
	"strings"
)

// ExtractCode returns the bare short code from a full short URL, a partial
// short URL (host without scheme), or a bare code. Only the first path
// segment counts; trailing segments are discarded.
func ExtractCode(shortURL string) string {
	s := shortURL

	if u, err := url.Parse(s); err == nil {
		switch {
		case u.Host != "":
			s = u.Path
		case u.Opaque != "":
			// Host without a scheme, e.g. localhost:3000/abc parses as
			// scheme "localhost" with opaque "3000/abc".
			s = u.Opaque
			if idx := strings.IndexByte(s, '/'); idx != -1 {
				s = s[idx:]
			} else {
				s = ""
			}
		default:
			s = u.Path
		}
	}

	s = strings.TrimPrefix(s, "/")

	if idx := strings.IndexByte(s, '/'); idx != -1 {
		s = s[:idx]
	}

	return s
}

package handlers

// ShortenRequest is the request body for shortening a URL.
type ShortenRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://www.example.com/very/long/path" format:"uri" json:"url" required:"true"`
	}
}

// ShortenResponse is the response for a successfully shortened URL.
type ShortenResponse struct {
	Body struct {
		ShortURL string `doc:"The full short URL" example:"http://localhost:3000/hQ9yzXdS3kE" json:"shortUrl"`
	}
}

// ResolveRequest carries a short URL to resolve. A bare code or a partial
// short URL is accepted as well.
type ResolveRequest struct {
	Body struct {
		ShortURL string `doc:"The short URL or bare code to resolve" example:"http://localhost:3000/hQ9yzXdS3kE" json:"shortUrl" required:"true"`
	}
}

// ResolveResponse is the response for a successfully resolved short URL.
type ResolveResponse struct {
	Body struct {
		LongURL string `doc:"The original URL" example:"https://www.example.com/very/long/path" json:"longUrl"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"hQ9yzXdS3kE" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

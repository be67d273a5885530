package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/shorten",
		Summary:     "Create short URL",
		Description: "Shortens a URL, returning the existing short URL when the URL was shortened before.",
		Tags:        []string{"URLs"},
	}, urlHandler.Shorten)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/resolve",
		Summary:     "Resolve short URL",
		Description: "Returns the original URL for a short URL or bare code.",
		Tags:        []string{"URLs"},
	}, urlHandler.Resolve)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL associated with the short code.",
		Tags:        []string{"URLs"},
	}, urlHandler.Redirect)
}
